// Package dates formats session date labels.
package dates

import "time"

// DefaultZone is the market timezone session labels default to.
const DefaultZone = "America/New_York"

// Label formats t in loc as MM.DD.YYYY, the session naming convention.
func Label(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("01.02.2006")
}

// TodayLabel returns today's session label for the named zone, falling back
// to the local zone if the name cannot be resolved.
func TodayLabel(zone string) string {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		loc = time.Local
	}
	return Label(time.Now(), loc)
}
