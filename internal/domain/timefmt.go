package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Persisted layouts. All values are naive local civil time.
const (
	DateLayout      = "02/01/2006"
	TimeLayout      = "15:04"
	DateTimeLayout  = "02/01/2006 15:04"
	TimestampLayout = "02/01/2006 15:04:05"
)

// Date is a calendar day stored as dd/MM/yyyy.
type Date struct {
	time.Time
}

// DateTime is a deadline stored as dd/MM/yyyy HH:mm.
type DateTime struct {
	time.Time
}

// Timestamp is an audit instant stored as dd/MM/yyyy HH:mm:ss.
type Timestamp struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

func DateOf(t time.Time) Date {
	return Date{StartOfDay(t)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func ParseDateTime(s string) (DateTime, error) {
	t, err := time.ParseInLocation(DateTimeLayout, s, time.Local)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{t}, nil
}

func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{t}, nil
}

// StartOfDay truncates t to local midnight of its calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateTimeLayout)
}

func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimestampLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	t, err := unmarshalLayout(data, DateLayout)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	t, err := unmarshalLayout(data, DateTimeLayout)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON also accepts dd/MM/yyyy HH:mm, which older request files used.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalLayout(data, TimestampLayout)
	if err != nil {
		parsed, err = unmarshalLayout(data, DateTimeLayout)
		if err != nil {
			return err
		}
	}
	t.Time = parsed
	return nil
}

func unmarshalLayout(data []byte, layout string) (time.Time, error) {
	if bytes.Equal(data, []byte("null")) {
		return time.Time{}, nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return time.Time{}, err
	}
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q with layout %q -> %w", s, layout, err)
	}
	return t, nil
}
