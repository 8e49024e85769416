package timeslot

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	ErrInvalidTimeFormat = errors.New("time of day must match HH:MM or HH:MM:SS")
	ErrTimeOutOfRange    = errors.New("time of day component out of range")
	ErrInvalidAmount     = errors.New("invalid monetary amount")
	ErrInvalidCurrency   = errors.New("currency code must be three uppercase letters")
)

var (
	timeOfDayRegex = regexp.MustCompile(`^([0-9]{2}):([0-9]{2})(?::([0-9]{2}))?$`)
	amountRegex    = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)
	currencyRegex  = regexp.MustCompile(`^[A-Z]{3}$`)
)

// TimeOfDay is a wall-clock time with no date and no timezone, normalized
// to seconds since midnight. Comparison is on that linear value only;
// there is no day wraparound.
type TimeOfDay struct {
	seconds int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayRegex.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, ErrInvalidTimeFormat
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second := 0
	if m[3] != "" {
		second, _ = strconv.Atoi(m[3])
	}

	return NewTimeOfDay(hour, minute, second)
}

func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, ErrTimeOutOfRange
	}
	return TimeOfDay{seconds: hour*3600 + minute*60 + second}, nil
}

// TimeOfDayFromClock drops the date and zone from an instant, keeping only
// the local wall-clock reading.
func TimeOfDayFromClock(t time.Time) TimeOfDay {
	return TimeOfDay{seconds: t.Hour()*3600 + t.Minute()*60 + t.Second()}
}

func (t TimeOfDay) Hour() int   { return t.seconds / 3600 }
func (t TimeOfDay) Minute() int { return (t.seconds / 60) % 60 }
func (t TimeOfDay) Second() int { return t.seconds % 60 }

func (t TimeOfDay) Compare(o TimeOfDay) int {
	switch {
	case t.seconds < o.seconds:
		return -1
	case t.seconds > o.seconds:
		return 1
	default:
		return 0
	}
}

func (t TimeOfDay) Before(o TimeOfDay) bool { return t.seconds < o.seconds }
func (t TimeOfDay) After(o TimeOfDay) bool  { return t.seconds > o.seconds }
func (t TimeOfDay) Equal(o TimeOfDay) bool  { return t.seconds == o.seconds }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// Price is a monetary amount kept as a decimal string plus an ISO 4217
// currency code. The amount is never converted between currencies here.
type Price struct {
	number       string
	currencyCode string
}

func NewPrice(number, currencyCode string) (Price, error) {
	if !amountRegex.MatchString(number) {
		return Price{}, ErrInvalidAmount
	}
	if !currencyRegex.MatchString(currencyCode) {
		return Price{}, ErrInvalidCurrency
	}
	return Price{number: number, currencyCode: currencyCode}, nil
}

func (p Price) Number() string       { return p.number }
func (p Price) CurrencyCode() string { return p.currencyCode }
func (p Price) IsZero() bool         { return p.number == "" && p.currencyCode == "" }

func (p Price) IsPositive() bool {
	v, err := strconv.ParseFloat(p.number, 64)
	return err == nil && v > 0
}

// Negate flips the sign of the amount, used for offsetting adjustments.
func (p Price) Negate() Price {
	if len(p.number) > 0 && p.number[0] == '-' {
		return Price{number: p.number[1:], currencyCode: p.currencyCode}
	}
	return Price{number: "-" + p.number, currencyCode: p.currencyCode}
}
