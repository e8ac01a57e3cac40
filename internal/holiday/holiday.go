package holiday

// Set maps ISO dates (YYYY-MM-DD) to public holiday names for one calendar year.
type Set map[string]string

// Contains reports whether the given ISO date is a public holiday.
func (s Set) Contains(isoDate string) bool {
	_, ok := s[isoDate]
	return ok
}

// Name returns the holiday name for the given ISO date, or "" if it is not a holiday.
func (s Set) Name(isoDate string) string {
	return s[isoDate]
}

// Provider supplies public holidays for a configured region.
// Holidays are queried one calendar year at a time: a single query
// serves every month of that year.
type Provider interface {
	Year(year int) (Set, error)
}
