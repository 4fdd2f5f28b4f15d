package eventfacts

import "context"

// Input resolves every field of a render for listing l. Resolution never
// fails; unreadable fields come back empty.
func (r *Resolver) Input(ctx context.Context, l Listing) Input {
	id := l.ID
	in := Input{
		Venue:    r.Resolve(ctx, id, FieldVenue),
		Address:  r.Resolve(ctx, id, FieldAddress),
		City:     r.Resolve(ctx, id, FieldCity),
		State:    r.Resolve(ctx, id, FieldState),
		Zip:      r.Resolve(ctx, id, FieldZip),
		AgeRange: r.Resolve(ctx, id, FieldAge),

		Price:         l.Price,
		Currency:      l.Currency,
		StockQuantity: l.StockQuantity,
		InStock:       l.InStock,

		Title:            l.Title,
		ShortDescription: l.ShortDescription,
		Description:      l.Description,
		ImageURL:         l.ImageURL,
		PermalinkURL:     l.PermalinkURL,
	}
	in.RawDate = rawOrNil(r.Resolve(ctx, id, FieldDate))
	in.RawTime = rawOrNil(r.Resolve(ctx, id, FieldTime))
	in.RawEndDate = rawOrNil(r.Resolve(ctx, id, FieldEndDate))
	return in
}

// Location resolves the location tab fields for a product.
func (r *Resolver) Location(ctx context.Context, productID int64) LocationInput {
	return LocationInput{
		Venue:       r.Resolve(ctx, productID, FieldVenue),
		Address:     r.Resolve(ctx, productID, FieldAddress),
		City:        r.Resolve(ctx, productID, FieldCity),
		State:       r.Resolve(ctx, productID, FieldState),
		Zip:         r.Resolve(ctx, productID, FieldZip),
		ParkingInfo: r.Meta(ctx, productID, MetaParkingInfo),
		MapsURL:     r.Meta(ctx, productID, MetaGoogleMapsURL),
		MapsEmbed:   r.Meta(ctx, productID, MetaGoogleMapsEmbed),
	}
}

func rawOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
