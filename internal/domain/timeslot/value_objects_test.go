//go:build unit

package timeslot_test

import (
	"testing"
	"time"

	"price-in-time/internal/domain/timeslot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		cases := []struct {
			in   string
			want string
		}{
			{"00:00", "00:00:00"},
			{"14:30", "14:30:00"},
			{"14:30:15", "14:30:15"},
			{"23:59:59", "23:59:59"},
			{"09:05", "09:05:00"},
		}
		for _, c := range cases {
			t.Run(c.in, func(t *testing.T) {
				tod, err := timeslot.ParseTimeOfDay(c.in)
				require.NoError(t, err)
				assert.Equal(t, c.want, tod.String())
			})
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		cases := []struct {
			name  string
			in    string
			errIs error
		}{
			{"empty", "", timeslot.ErrInvalidTimeFormat},
			{"missing minutes", "14", timeslot.ErrInvalidTimeFormat},
			{"single digit hour", "9:30", timeslot.ErrInvalidTimeFormat},
			{"trailing garbage", "14:30:00x", timeslot.ErrInvalidTimeFormat},
			{"negative", "-4:30", timeslot.ErrInvalidTimeFormat},
			{"hour out of range", "24:00", timeslot.ErrTimeOutOfRange},
			{"minute out of range", "12:60", timeslot.ErrTimeOutOfRange},
			{"second out of range", "12:00:60", timeslot.ErrTimeOutOfRange},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := timeslot.ParseTimeOfDay(c.in)
				require.Error(t, err)
				assert.ErrorIs(t, err, c.errIs)
			})
		}
	})

	t.Run("round trip", func(t *testing.T) {
		tod, err := timeslot.ParseTimeOfDay("14:30")
		require.NoError(t, err)
		assert.Equal(t, "14:30:00", tod.String())

		again, err := timeslot.ParseTimeOfDay(tod.String())
		require.NoError(t, err)
		assert.True(t, tod.Equal(again))
	})
}

func TestTimeOfDayComparison(t *testing.T) {
	parse := func(s string) timeslot.TimeOfDay {
		tod, err := timeslot.ParseTimeOfDay(s)
		require.NoError(t, err)
		return tod
	}

	a := parse("09:00")
	b := parse("09:00:01")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))

	// Linear seconds-since-midnight only: no wraparound, so the last
	// second of the day still sorts after midnight.
	assert.True(t, parse("23:59:59").After(parse("00:00:00")))
}

func TestTimeOfDayFromClock(t *testing.T) {
	instant := time.Date(2024, 6, 1, 14, 30, 15, 0, time.FixedZone("X", 3*3600))
	tod := timeslot.TimeOfDayFromClock(instant)
	assert.Equal(t, "14:30:15", tod.String())
	assert.Equal(t, 14, tod.Hour())
	assert.Equal(t, 30, tod.Minute())
	assert.Equal(t, 15, tod.Second())
}

func TestNewPrice(t *testing.T) {
	cases := []struct {
		name     string
		number   string
		currency string
		errIs    error
	}{
		{name: "integer amount", number: "25", currency: "USD"},
		{name: "decimal amount", number: "19.99", currency: "EUR"},
		{name: "negative amount", number: "-3.50", currency: "USD"},
		{name: "empty number", number: "", currency: "USD", errIs: timeslot.ErrInvalidAmount},
		{name: "non numeric", number: "abc", currency: "USD", errIs: timeslot.ErrInvalidAmount},
		{name: "lowercase currency", number: "10", currency: "usd", errIs: timeslot.ErrInvalidCurrency},
		{name: "short currency", number: "10", currency: "US", errIs: timeslot.ErrInvalidCurrency},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := timeslot.NewPrice(c.number, c.currency)
			if c.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.number, p.Number())
			assert.Equal(t, c.currency, p.CurrencyCode())
		})
	}
}

func TestPriceNegate(t *testing.T) {
	p, err := timeslot.NewPrice("12.50", "USD")
	require.NoError(t, err)

	neg := p.Negate()
	assert.Equal(t, "-12.50", neg.Number())
	assert.False(t, neg.IsPositive())

	back := neg.Negate()
	assert.Equal(t, "12.50", back.Number())
	assert.True(t, back.IsPositive())
}
