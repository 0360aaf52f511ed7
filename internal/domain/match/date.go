package match

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar date carried as YYYY-MM-DD. Postgres stores it in a DATE
// column and sqlite in TEXT, so it scans from both time.Time and strings.
type Date string

func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// DateFromEpochMillis converts a provider millisecond timestamp to its UTC date.
func DateFromEpochMillis(ms int64) Date {
	return DateOf(time.UnixMilli(ms).UTC())
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", value, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return string(d)
}

func (d Date) Time() (time.Time, error) {
	return time.Parse(DateLayout, string(d))
}

// AddDays shifts the date by days. An unparseable date is returned as is.
func (d Date) AddDays(days int) Date {
	t, err := d.Time()
	if err != nil {
		return d
	}
	return DateOf(t.AddDate(0, 0, days))
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = DateOf(v)
	case string:
		*d = Date(truncateDate(v))
	case []byte:
		*d = Date(truncateDate(string(v)))
	default:
		return fmt.Errorf("scan date: unsupported type %T", src)
	}
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

func truncateDate(v string) string {
	if len(v) > len(DateLayout) {
		return v[:len(DateLayout)]
	}
	return v
}
