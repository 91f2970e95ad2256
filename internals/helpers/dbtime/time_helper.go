// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"sync"
	"time"

	"kaskelas_backend/internals/configs"
)

const DateLayout = "2006-01-02"

var (
	locOnce sync.Once
	loc     *time.Location
)

// ClassLocation: timezone kelas dari CLASS_TIMEZONE.
// Fallback: Asia/Jakarta, lalu UTC.
func ClassLocation() *time.Location {
	locOnce.Do(func() {
		name := strings.TrimSpace(configs.ClassTimezone)
		if name == "" {
			name = "Asia/Jakarta"
		}
		if l, err := time.LoadLocation(name); err == nil {
			loc = l
			return
		}
		if l, err := time.LoadLocation("Asia/Jakarta"); err == nil {
			loc = l
			return
		}
		loc = time.UTC
	})
	return loc
}

// NowInClass: "sekarang" di timezone kelas. Satu-satunya tempat baca jam dinding;
// semua kalkulasi kas menerima now sebagai parameter.
func NowInClass() time.Time {
	return time.Now().In(ClassLocation())
}

// ParseDate parse "YYYY-MM-DD" sebagai tengah malam di lokasi yang diberikan.
func ParseDate(s string, in *time.Location) (time.Time, error) {
	if in == nil {
		in = time.UTC
	}
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), in)
}

// StartOfDay memotong jam di zona t sendiri.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay: 23:59:59.999999999 pada hari yang sama.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// DateKey: kunci bucket harian "YYYY-MM-DD" di zona t.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}
