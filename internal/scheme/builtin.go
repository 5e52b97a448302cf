package scheme

// Builtin returns the catalog of templates that ship with vitrine.
func Builtin() Catalog {
	c, err := NewCatalog(builtins()...)
	if err != nil {
		// Built-in data is checked by tests; reaching this is a build bug.
		panic(err)
	}
	return c
}

func builtins() []ThemeDefinition {
	return []ThemeDefinition{
		{
			ID:              "restaurant",
			Name:            "Trattoria",
			Description:     "Warm, appetite-forward palettes for restaurants and bistros.",
			DefaultSchemeID: "terracotta",
			Schemes: []ColorScheme{
				{
					ID: "terracotta", Name: "Terracotta",
					Primary: "#B4532A", PrimaryForeground: "#FFF8F1",
					Secondary: "#F3E3D3", SecondaryForeground: "#4A2A17",
					Accent: "#E9A23B", AccentForeground: "#2B1A06",
					Background: "#FFFBF6", Foreground: "#2E1F16",
					Muted: "#F1E7DC", MutedForeground: "#6F5848",
					Card: "#FFFFFF", CardForeground: "#2E1F16",
					Border: "#E4D3C2", Ring: "#B4532A",
				},
				{
					ID: "olive", Name: "Olive Grove",
					Primary: "#5B6B2E", PrimaryForeground: "#F8FAF0",
					Secondary: "#E6EBD5", SecondaryForeground: "#2F3817",
					Accent: "#C7A43E", AccentForeground: "#2A2208",
					Background: "#FAFBF5", Foreground: "#23281A",
					Muted: "#ECEFE0", MutedForeground: "#5E6450",
					Card: "#FFFFFF", CardForeground: "#23281A",
					Border: "#D8DDC6", Ring: "#5B6B2E",
				},
				{
					ID: "night-service", Name: "Night Service",
					Primary: "#E07A4F", PrimaryForeground: "#1A0F0A",
					Secondary: "#2C211C", SecondaryForeground: "#F2E6DE",
					Accent: "#F2C14E", AccentForeground: "#1F1604",
					Background: "#14100E", Foreground: "#F4ECE6",
					Muted: "#231C18", MutedForeground: "#B7A79C",
					Card: "#1C1613", CardForeground: "#F4ECE6",
					Border: "#3A2E27", Ring: "#E07A4F",
				},
			},
		},
		{
			ID:              "gym",
			Name:            "Ironworks",
			Description:     "High-energy palettes for gyms and fitness studios.",
			DefaultSchemeID: "volt",
			Schemes: []ColorScheme{
				{
					ID: "volt", Name: "Volt",
					Primary: "#C6F432", PrimaryForeground: "#0D1200",
					Secondary: "#1E2127", SecondaryForeground: "#E9EDF2",
					Accent: "#FF5A36", AccentForeground: "#FFFFFF",
					Background: "#0B0D10", Foreground: "#F1F4F7",
					Muted: "#171A1F", MutedForeground: "#9AA3AE",
					Card: "#12151A", CardForeground: "#F1F4F7",
					Border: "#262B33", Ring: "#C6F432",
				},
				{
					ID: "crimson", Name: "Crimson",
					Primary: "#D7263D", PrimaryForeground: "#FFFFFF",
					Secondary: "#F4F4F6", SecondaryForeground: "#1B1B22",
					Accent: "#1B998B", AccentForeground: "#FFFFFF",
					Background: "#FFFFFF", Foreground: "#15151B",
					Muted: "#F0F0F3", MutedForeground: "#5D5D6B",
					Card: "#FAFAFB", CardForeground: "#15151B",
					Border: "#E1E1E7", Ring: "#D7263D",
				},
				{
					ID: "steel", Name: "Steel",
					Primary: "#3A86FF", PrimaryForeground: "#FFFFFF",
					Secondary: "#DDE3EA", SecondaryForeground: "#1C2630",
					Accent: "#FFBE0B", AccentForeground: "#201800",
					Background: "#F5F7FA", Foreground: "#141B22",
					Muted: "#E7ECF1", MutedForeground: "#56616D",
					Card: "#FFFFFF", CardForeground: "#141B22",
					Border: "#CDD5DE", Ring: "#3A86FF",
				},
			},
		},
		{
			ID:              "law-firm",
			Name:            "Counsel",
			Description:     "Sober, trust-building palettes for law firms.",
			DefaultSchemeID: "navy",
			Schemes: []ColorScheme{
				{
					ID: "navy", Name: "Navy & Brass",
					Primary: "#1F3A5F", PrimaryForeground: "#F4F7FB",
					Secondary: "#E8ECF2", SecondaryForeground: "#1F2B3A",
					Accent: "#B08D57", AccentForeground: "#1E1609",
					Background: "#FBFCFD", Foreground: "#17202B",
					Muted: "#EEF1F5", MutedForeground: "#586474",
					Card: "#FFFFFF", CardForeground: "#17202B",
					Border: "#D9DFE7", Ring: "#1F3A5F",
				},
				{
					ID: "oxblood", Name: "Oxblood",
					Primary: "#6D1A2B", PrimaryForeground: "#FBF3F4",
					Secondary: "#F1E8E9", SecondaryForeground: "#3A1A20",
					Accent: "#8C7A5B", AccentForeground: "#FFFFFF",
					Background: "#FDFBFA", Foreground: "#241A1C",
					Muted: "#F3EEEE", MutedForeground: "#665A5C",
					Card: "#FFFFFF", CardForeground: "#241A1C",
					Border: "#E2D8D9", Ring: "#6D1A2B",
				},
				{
					ID: "chambers", Name: "Chambers",
					Primary: "#C9A86A", PrimaryForeground: "#1A1408",
					Secondary: "#232A33", SecondaryForeground: "#E7EBF0",
					Accent: "#7FA7C9", AccentForeground: "#0D1720",
					Background: "#101419", Foreground: "#E9EDF1",
					Muted: "#1A2027", MutedForeground: "#9BA6B2",
					Card: "#151A20", CardForeground: "#E9EDF1",
					Border: "#2C343E", Ring: "#C9A86A",
				},
			},
		},
		{
			ID:              "dental",
			Name:            "Bright Smile",
			Description:     "Clean, clinical palettes for dental and health clinics.",
			DefaultSchemeID: "mint",
			Schemes: []ColorScheme{
				{
					ID: "mint", Name: "Mint",
					Primary: "#0F8B7A", PrimaryForeground: "#F2FFFC",
					Secondary: "#DFF5F1", SecondaryForeground: "#0D3B35",
					Accent: "#5CC8FF", AccentForeground: "#05202E",
					Background: "#FAFEFD", Foreground: "#10211F",
					Muted: "#E9F5F3", MutedForeground: "#4D6663",
					Card: "#FFFFFF", CardForeground: "#10211F",
					Border: "#CFE7E3", Ring: "#0F8B7A",
				},
				{
					ID: "sky", Name: "Sky",
					Primary: "#1769AA", PrimaryForeground: "#F3F9FF",
					Secondary: "#E3F0FB", SecondaryForeground: "#0F2F4B",
					Accent: "#FFB4A2", AccentForeground: "#3A140B",
					Background: "#FBFDFF", Foreground: "#0F1C28",
					Muted: "#EAF2F9", MutedForeground: "#4F6375",
					Card: "#FFFFFF", CardForeground: "#0F1C28",
					Border: "#D3E2EF", Ring: "#1769AA",
				},
				{
					ID: "lavender", Name: "Lavender",
					Primary: "#6B4FBB", PrimaryForeground: "#FAF7FF",
					Secondary: "#EEE9FA", SecondaryForeground: "#2D2152",
					Accent: "#3CC9A8", AccentForeground: "#06271F",
					Background: "#FDFCFF", Foreground: "#1D1830",
					Muted: "#F2EFFA", MutedForeground: "#5F5878",
					Card: "#FFFFFF", CardForeground: "#1D1830",
					Border: "#E0DAF2", Ring: "#6B4FBB",
				},
			},
		},
		{
			ID:              "architecture",
			Name:            "Plan & Section",
			Description:     "Minimal, material-driven palettes for architecture studios.",
			DefaultSchemeID: "concrete",
			Schemes: []ColorScheme{
				{
					ID: "concrete", Name: "Concrete",
					Primary: "#1A1A1A", PrimaryForeground: "#F7F7F5",
					Secondary: "#E9E8E4", SecondaryForeground: "#1A1A1A",
					Accent: "#D9572B", AccentForeground: "#FFFFFF",
					Background: "#F7F7F5", Foreground: "#1A1A1A",
					Muted: "#EDECE8", MutedForeground: "#5C5B57",
					Card: "#FFFFFF", CardForeground: "#1A1A1A",
					Border: "#DAD8D2", Ring: "#1A1A1A",
				},
				{
					ID: "timber", Name: "Timber",
					Primary: "#8A5A34", PrimaryForeground: "#FFF9F2",
					Secondary: "#EFE5D8", SecondaryForeground: "#3B2716",
					Accent: "#2F5D50", AccentForeground: "#F1FAF7",
					Background: "#FCF8F2", Foreground: "#2A1F15",
					Muted: "#F1EADF", MutedForeground: "#6A5A4A",
					Card: "#FFFFFF", CardForeground: "#2A1F15",
					Border: "#E2D5C3", Ring: "#8A5A34",
				},
				{
					ID: "blueprint", Name: "Blueprint",
					Primary: "#8EC5FF", PrimaryForeground: "#06182B",
					Secondary: "#13345A", SecondaryForeground: "#DCEBFF",
					Accent: "#FFFFFF", AccentForeground: "#0B2545",
					Background: "#0B2545", Foreground: "#E4F0FF",
					Muted: "#10304F", MutedForeground: "#9DB7D5",
					Card: "#0E2C4E", CardForeground: "#E4F0FF",
					Border: "#24476F", Ring: "#8EC5FF",
				},
			},
		},
	}
}
