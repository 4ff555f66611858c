package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateTime uses RFC3339 format. The time zone offset is kept in time.Time.
type DateTime struct {
	timeVal time.Time
}

func (dt DateTime) Unix() int64 {
	return dt.timeVal.Unix()
}

func (dt DateTime) Time() time.Time {
	return dt.timeVal
}

func (dt DateTime) Before(o DateTime) bool {
	return dt.timeVal.Before(o.timeVal)
}

func (dt DateTime) Equal(o DateTime) bool {
	return dt.timeVal.Equal(o.timeVal)
}

func (dt DateTime) IsZero() bool {
	return dt.timeVal.IsZero()
}

func (dt *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	newDt, err := NewDateTimeFromString(s)
	if err != nil {
		return err
	}
	*dt = newDt
	return nil
}

func (dt DateTime) MarshalJSON() ([]byte, error) {
	strVal := dt.timeVal.Format(time.RFC3339)
	return json.Marshal(strVal)
}

// Value stores the DateTime as a TIMESTAMPTZ.
func (dt DateTime) Value() (driver.Value, error) {
	return dt.timeVal, nil
}

func (dt *DateTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*dt = DateTime{}
	case time.Time:
		*dt = NewDateTime(v)
	case string:
		newDt, err := NewDateTimeFromString(v)
		if err != nil {
			return err
		}
		*dt = newDt
	default:
		return fmt.Errorf("cannot scan %T into DateTime", src)
	}
	return nil
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{
		timeVal: t,
	}
}

func NewDateTimeFromUnix(t int64) DateTime {
	return DateTime{
		timeVal: time.Unix(t, 0).UTC(),
	}
}

func NewDateTimeFromString(t string) (DateTime, error) {
	ts, err := time.Parse(time.RFC3339, t)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{
		timeVal: ts,
	}, nil
}

// MustDateTime is NewDateTimeFromString that panics on malformed input.
func MustDateTime(t string) DateTime {
	dt, err := NewDateTimeFromString(t)
	if err != nil {
		panic(err)
	}
	return dt
}
