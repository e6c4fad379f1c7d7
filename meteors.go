package dayspark

import "time"

// Annual meteor showers by peak date. Peaks drift by a day or so from year to
// year, hence the tolerance window in ShowerPeaks. Dates only: the table
// carries no time of day.
type meteorShower struct {
	name  string
	month time.Month
	day   int
}

var meteorShowers = []meteorShower{
	{"Quadrantids", time.January, 3},
	{"Lyrids", time.April, 22},
	{"Eta Aquariids", time.May, 6},
	{"Delta Aquariids", time.July, 30},
	{"Perseids", time.August, 12},
	{"Orionids", time.October, 21},
	{"Leonids", time.November, 17},
	{"Geminids", time.December, 14},
	{"Ursids", time.December, 22},
}

// showerTolerance widens each peak to a small calendar window.
const showerTolerance = 1 // days

// ShowerPeaks returns the names of showers peaking within the tolerance
// window of the given civil date.
func ShowerPeaks(year int, month time.Month, day int) []string {
	query := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	var names []string
	for _, s := range meteorShowers {
		for _, y := range []int{year - 1, year, year + 1} {
			peak := time.Date(y, s.month, s.day, 0, 0, 0, 0, time.UTC)
			delta := query.Sub(peak).Hours() / 24
			if delta >= -showerTolerance && delta <= showerTolerance {
				names = append(names, s.name)
				break
			}
		}
	}
	return names
}
