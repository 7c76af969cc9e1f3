package utils

import "time"

// Western Indonesia time (WIB, +07:00) — all visit dates are interpreted here.
var jakartaLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		return loc
	}
	return time.FixedZone("WIB", 7*3600)
}()

func JakartaLocation() *time.Location { return jakartaLoc }

func NowUnixSeconds() int64 { return time.Now().Unix() }

// TodayJakarta returns midnight of the current day in WIB.
func TodayJakarta() time.Time {
	now := time.Now().In(jakartaLoc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, jakartaLoc)
}

// ParseVisitDate parses a YYYY-MM-DD visit date in WIB.
func ParseVisitDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, jakartaLoc)
}

func FromUnixSecondsJakarta(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(jakartaLoc)
}

func FormatRFC3339Jakarta(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(jakartaLoc).Format(time.RFC3339)
}
