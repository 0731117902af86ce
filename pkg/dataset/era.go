package dataset

// Era order as it appears in summary output.
var eraOrder = []string{"1.0", "Hiatus 1", "2.0", "Hiatus 2", "3.0", "4.0", "Unknown"}

// EraForYear maps a show year onto the band's canonical eras. 2001 counts as
// the first hiatus even though the band played that year.
func EraForYear(year int) string {
	switch {
	case year >= 1983 && year <= 2000:
		return "1.0"
	case year == 2001:
		return "Hiatus 1"
	case year >= 2002 && year <= 2004:
		return "2.0"
	case year >= 2005 && year <= 2008:
		return "Hiatus 2"
	case year >= 2009 && year <= 2020:
		return "3.0"
	case year >= 2021:
		return "4.0"
	}
	return "Unknown"
}
