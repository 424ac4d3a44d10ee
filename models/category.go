package models

// Category names used to group vault records. Stored as plain strings in the
// Record model so that unknown categories survive round-trips unchanged.
const (
	CategoryBanking       = "Banking"
	CategorySocialMedia   = "Social Media"
	CategoryEmail         = "Email"
	CategoryWork          = "Work"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryOther         = "Other"
)

// KnownCategories lists every category the client offers when creating a
// record, in display order.
func KnownCategories() []string {
	return []string{
		CategoryBanking,
		CategorySocialMedia,
		CategoryEmail,
		CategoryWork,
		CategoryShopping,
		CategoryEntertainment,
		CategoryOther,
	}
}

// NormalizeCategory maps an arbitrary category value onto a known category
// name, falling back to CategoryOther for anything unrecognised.
func NormalizeCategory(value string) string {
	for _, c := range KnownCategories() {
		if c == value {
			return c
		}
	}
	return CategoryOther
}
