package phpdate

import "time"

// projectLocal re-stamps the wall-clock fields of a zoned time as a UTC
// instant, at second precision. Reading the result through UTC accessors
// yields exactly the zone's local calendar fields, which lets every specifier
// computation do plain UTC arithmetic without re-deriving zone offsets.
// The view minus the original instant, in whole seconds, is the zone's UTC
// offset at that moment.
func projectLocal(zoned time.Time) time.Time {
	return time.Date(
		zoned.Year(), zoned.Month(), zoned.Day(),
		zoned.Hour(), zoned.Minute(), zoned.Second(),
		0, time.UTC,
	)
}
