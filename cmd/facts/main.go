// Command facts is the Clinic Facts CLI: schema migration, fixture import,
// and one-off renders and edits of a single product.
//
// Usage:
//
//	clinic-facts migrate
//	clinic-facts import products.yaml
//	clinic-facts show 101
//	clinic-facts event 101 --fixture products.yaml
//	clinic-facts head 101
//	clinic-facts set-location 101 --city Camden --state NJ
//	clinic-facts set-schedule 101 --row "9:00 AM=Arrival & Check-in"
//	clinic-facts set-safety 101 --text "Bring shin guards"
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ptpsports/clinic-facts/internal/config"
	"github.com/ptpsports/clinic-facts/internal/db"
	"github.com/ptpsports/clinic-facts/internal/eventfacts"
	"github.com/ptpsports/clinic-facts/internal/render"
	"github.com/ptpsports/clinic-facts/internal/store"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// fixturePath, when set, swaps the database for an in-memory store loaded
// from the file. Writes then only affect that process.
var fixturePath string

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:           "clinic-facts",
		Short:         "Clinic Facts CLI",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&fixturePath, "fixture", "", "Read products from a YAML/JSON fixture instead of the database")

	root.AddCommand(migrateCmd())
	root.AddCommand(importCmd())
	root.AddCommand(showCmd())
	root.AddCommand(eventCmd())
	root.AddCommand(headCmd())
	root.AddCommand(locationCmd())
	root.AddCommand(scheduleCmd())
	root.AddCommand(setLocationCmd())
	root.AddCommand(setScheduleCmd())
	root.AddCommand(setSafetyCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// Database commands
// --------------------------------------------------------------------------

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the content store schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("Schema applied")
			return nil
		},
	}
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import products, attributes, and metadata from a fixture file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := store.ReadFixture(args[0])
			if err != nil {
				return err
			}
			return runWithStore(func(ctx context.Context, _ *eventfacts.Normalizer, st store.Store) error {
				n, err := store.Import(ctx, st, f)
				if err != nil {
					return err
				}
				logger.Info("Fixture imported", "file", args[0], "products", n)
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// Render commands
// --------------------------------------------------------------------------

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <product-id>",
		Short: "Print the normalized event facts as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: withProduct(func(ctx context.Context, n *eventfacts.Normalizer, st store.Store, id int64) error {
			in, err := loadInput(ctx, st, id)
			if err != nil {
				return err
			}
			return printJSON(n.Normalize(in))
		}),
	}
}

func eventCmd() *cobra.Command {
	var script bool
	cmd := &cobra.Command{
		Use:   "event <product-id>",
		Short: "Print the SportsEvent JSON-LD document (nothing when no start date resolves)",
		Args:  cobra.ExactArgs(1),
		RunE: withProduct(func(ctx context.Context, n *eventfacts.Normalizer, st store.Store, id int64) error {
			in, err := loadInput(ctx, st, id)
			if err != nil {
				return err
			}
			rec := n.BuildEventRecord(in)
			if rec == nil {
				logger.Warn("No start date resolved, structured data suppressed", "product_id", id)
				return nil
			}
			if script {
				tag, err := render.ScriptTag(rec)
				if err != nil {
					return err
				}
				fmt.Print(tag)
				return nil
			}
			data, err := render.JSONLD(rec)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}),
	}
	cmd.Flags().BoolVar(&script, "script", false, "Wrap the document in a <script type=\"application/ld+json\"> element")
	return cmd
}

func headCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "head <product-id>",
		Short: "Print the <head> meta tags and structured data script",
		Args:  cobra.ExactArgs(1),
		RunE: withProduct(func(ctx context.Context, n *eventfacts.Normalizer, st store.Store, id int64) error {
			in, err := loadInput(ctx, st, id)
			if err != nil {
				return err
			}
			return render.Head(os.Stdout, n.PageMeta(in), n.BuildEventRecord(in))
		}),
	}
}

func locationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "location <product-id>",
		Short: "Print the location tab content as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: withProduct(func(ctx context.Context, _ *eventfacts.Normalizer, st store.Store, id int64) error {
			if _, err := st.Listing(ctx, id); err != nil {
				return err
			}
			return printJSON(eventfacts.BuildLocation(newResolver(st).Location(ctx, id)))
		}),
	}
}

func scheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <product-id>",
		Short: "Print the clinic agenda, or the default agenda when none is stored",
		Args:  cobra.ExactArgs(1),
		RunE: withProduct(func(ctx context.Context, _ *eventfacts.Normalizer, st store.Store, id int64) error {
			if _, err := st.Listing(ctx, id); err != nil {
				return err
			}
			items, err := store.Schedule(ctx, st, id)
			if err != nil {
				return err
			}
			return printJSON(eventfacts.ScheduleOrDefault(items))
		}),
	}
}

// --------------------------------------------------------------------------
// Edit commands
// --------------------------------------------------------------------------

func setLocationCmd() *cobra.Command {
	var venue, address, city, state, zip, parking, mapsURL, mapsEmbed string
	cmd := &cobra.Command{
		Use:   "set-location <product-id>",
		Short: "Update location box fields; unset flags are left unchanged",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = withProduct(func(ctx context.Context, _ *eventfacts.Normalizer, st store.Store, id int64) error {
		flag := func(name, v string) *string {
			if !cmd.Flags().Changed(name) {
				return nil
			}
			return &v
		}
		u := store.LocationUpdate{
			VenueName:   flag("venue", venue),
			Address:     flag("address", address),
			City:        flag("city", city),
			State:       flag("state", state),
			Zip:         flag("zip", zip),
			ParkingInfo: flag("parking", parking),
			MapsURL:     flag("maps-url", mapsURL),
			MapsEmbed:   flag("maps-embed", mapsEmbed),
		}
		if err := store.ApplyLocation(ctx, st, id, u); err != nil {
			return err
		}
		logger.Info("Location updated", "product_id", id)
		return printJSON(eventfacts.BuildLocation(newResolver(st).Location(ctx, id)))
	})
	cmd.Flags().StringVar(&venue, "venue", "", "Venue name")
	cmd.Flags().StringVar(&address, "address", "", "Street address")
	cmd.Flags().StringVar(&city, "city", "", "City")
	cmd.Flags().StringVar(&state, "state", "", "State")
	cmd.Flags().StringVar(&zip, "zip", "", "ZIP code")
	cmd.Flags().StringVar(&parking, "parking", "", "Parking information")
	cmd.Flags().StringVar(&mapsURL, "maps-url", "", "Google Maps link")
	cmd.Flags().StringVar(&mapsEmbed, "maps-embed", "", "Google Maps embed code")
	return cmd
}

func setScheduleCmd() *cobra.Command {
	var rows []string
	cmd := &cobra.Command{
		Use:   "set-schedule <product-id>",
		Short: `Replace the agenda with --row "TIME=ACTIVITY" entries`,
		Args:  cobra.ExactArgs(1),
		RunE: withProduct(func(ctx context.Context, _ *eventfacts.Normalizer, st store.Store, id int64) error {
			items, err := parseRows(rows)
			if err != nil {
				return err
			}
			saved, err := store.SetSchedule(ctx, st, id, items)
			if err != nil {
				return err
			}
			logger.Info("Schedule updated", "product_id", id, "rows", len(saved))
			return printJSON(saved)
		}),
	}
	cmd.Flags().StringArrayVar(&rows, "row", nil, `Agenda row as "TIME=ACTIVITY" (repeatable)`)
	return cmd
}

func setSafetyCmd() *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "set-safety <product-id>",
		Short: "Set the custom safety reminders text",
		Args:  cobra.ExactArgs(1),
		RunE: withProduct(func(ctx context.Context, _ *eventfacts.Normalizer, st store.Store, id int64) error {
			saved, err := store.SetSafetyReminders(ctx, st, id, text)
			if err != nil {
				return err
			}
			logger.Info("Safety reminders updated", "product_id", id)
			fmt.Println(saved)
			return nil
		}),
	}
	cmd.Flags().StringVar(&text, "text", "", "Reminder text (simple markup allowed)")
	return cmd
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

// runWithStore loads config and opens the store (fixture or database), then
// calls fn.
func runWithStore(fn func(ctx context.Context, n *eventfacts.Normalizer, st store.Store) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if fixturePath != "" {
		cfg, err := config.LoadOffline()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		mem, err := store.LoadMemory(ctx, fixturePath)
		if err != nil {
			return err
		}
		return fn(ctx, eventfacts.New(cfg.Location(), cfg.Profile).WithCurrency(cfg.Currency), mem)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, eventfacts.New(cfg.Location(), cfg.Profile).WithCurrency(cfg.Currency), store.NewPostgres(pool.Pool))
}

// withProduct parses the product ID argument and runs fn against the store.
func withProduct(fn func(ctx context.Context, n *eventfacts.Normalizer, st store.Store, id int64) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid product id %q", args[0])
		}
		return runWithStore(func(ctx context.Context, n *eventfacts.Normalizer, st store.Store) error {
			return fn(ctx, n, st, id)
		})
	}
}

func newResolver(st store.Store) *eventfacts.Resolver {
	res := eventfacts.NewResolver(st)
	res.OnError = func(productID int64, name string, err error) {
		logger.Warn("Field resolution failed", "product_id", productID, "field", name, "error", err)
	}
	return res
}

func loadInput(ctx context.Context, st store.Store, id int64) (eventfacts.Input, error) {
	listing, err := st.Listing(ctx, id)
	if err != nil {
		return eventfacts.Input{}, err
	}
	return newResolver(st).Input(ctx, listing), nil
}

func parseRows(rows []string) ([]eventfacts.ScheduleItem, error) {
	items := make([]eventfacts.ScheduleItem, 0, len(rows))
	for _, row := range rows {
		t, activity, ok := strings.Cut(row, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --row %q: want TIME=ACTIVITY", row)
		}
		items = append(items, eventfacts.ScheduleItem{Time: t, Activity: activity})
	}
	return items, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
