package eventfacts

// Profile carries the constants of an event series: sport tag, organizer,
// performer and the brand strings used in page meta.
type Profile struct {
	Sport     string       `yaml:"sport"`
	Organizer Organization `yaml:"organizer"`
	Performer Organization `yaml:"performer"`

	Brand        string `yaml:"brand"`
	ClinicLabel  string `yaml:"clinic_label"`
	SeriesLabel  string `yaml:"series_label"`
	Pitch        string `yaml:"pitch"`
	SellingLines string `yaml:"selling_lines"`
	Duration     string `yaml:"duration"`
}

// DefaultProfile is the winter soccer clinic series.
func DefaultProfile() Profile {
	return Profile{
		Sport:        "Soccer",
		Organizer:    Organization{Name: "PTP Sports"},
		Performer:    Organization{Name: "NCAA & Professional Coaches"},
		Brand:        "PTP Sports",
		ClinicLabel:  "Winter Soccer Clinic",
		SeriesLabel:  "Winter Soccer Clinics",
		Pitch:        "Join PTP's elite winter soccer clinic",
		SellingLines: "Led by NCAA & Pro coaches. Small groups, game-speed reps, 3-hour indoor training. Limited spots available. Register now!",
		Duration:     "3-hour clinic",
	}
}

// withDefaults fills blank fields from DefaultProfile.
func (p Profile) withDefaults() Profile {
	d := DefaultProfile()
	if p.Sport == "" {
		p.Sport = d.Sport
	}
	if p.Organizer.Name == "" {
		p.Organizer.Name = d.Organizer.Name
	}
	if p.Performer.Name == "" {
		p.Performer.Name = d.Performer.Name
	}
	if p.Brand == "" {
		p.Brand = d.Brand
	}
	if p.ClinicLabel == "" {
		p.ClinicLabel = d.ClinicLabel
	}
	if p.SeriesLabel == "" {
		p.SeriesLabel = d.SeriesLabel
	}
	if p.Pitch == "" {
		p.Pitch = d.Pitch
	}
	if p.SellingLines == "" {
		p.SellingLines = d.SellingLines
	}
	if p.Duration == "" {
		p.Duration = d.Duration
	}
	return p
}

func (p Profile) organizer() Organization {
	return Organization{Type: TypeOrganization, Name: p.Organizer.Name, URL: p.Organizer.URL}
}

func (p Profile) performer() Organization {
	return Organization{Type: TypeOrganization, Name: p.Performer.Name, URL: p.Performer.URL}
}
