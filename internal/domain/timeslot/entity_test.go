//go:build unit

package timeslot_test

import (
	"testing"

	"price-in-time/internal/domain/timeslot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) timeslot.TimeOfDay {
	t.Helper()
	tod, err := timeslot.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func shippingSlot(t *testing.T, id, start, end string, freeShipping bool) timeslot.Slot {
	t.Helper()
	slot, err := timeslot.NewSlot(id, mustTime(t, start), mustTime(t, end), freeShipping, nil, 0)
	require.NoError(t, err)
	return slot
}

func TestNewSlot(t *testing.T) {
	t.Run("requires an id", func(t *testing.T) {
		_, err := timeslot.NewSlot("", mustTime(t, "09:00"), mustTime(t, "10:00"), false, nil, 0)
		assert.ErrorIs(t, err, timeslot.ErrSlotIDEmpty)
	})

	t.Run("optional price", func(t *testing.T) {
		price, err := timeslot.NewPrice("9.99", "USD")
		require.NoError(t, err)

		withPrice, err := timeslot.NewSlot("a", mustTime(t, "09:00"), mustTime(t, "10:00"), false, &price, 1)
		require.NoError(t, err)
		got, ok := withPrice.Price()
		require.True(t, ok)
		assert.Equal(t, "9.99", got.Number())

		withoutPrice, err := timeslot.NewSlot("b", mustTime(t, "09:00"), mustTime(t, "10:00"), true, nil, 2)
		require.NoError(t, err)
		_, ok = withoutPrice.Price()
		assert.False(t, ok)
	})
}

func TestSlotCovers(t *testing.T) {
	slot := shippingSlot(t, "a", "09:00", "12:00", false)

	cases := []struct {
		instant string
		want    bool
	}{
		{"08:59:59", false},
		{"09:00:00", true}, // inclusive start
		{"10:30:00", true},
		{"12:00:00", true}, // inclusive end
		{"12:00:01", false},
	}
	for _, c := range cases {
		t.Run(c.instant, func(t *testing.T) {
			assert.Equal(t, c.want, slot.Covers(mustTime(t, c.instant)))
		})
	}

	t.Run("zero-width slot covers only its own instant", func(t *testing.T) {
		zero := shippingSlot(t, "z", "10:00", "10:00", false)
		assert.True(t, zero.Covers(mustTime(t, "10:00")))
		assert.False(t, zero.Covers(mustTime(t, "10:00:01")))
		assert.False(t, zero.Covers(mustTime(t, "09:59:59")))
	})
}

func TestSlotSetResolveAt(t *testing.T) {
	set := timeslot.NewSlotSet("beverages", true, []timeslot.Slot{
		shippingSlot(t, "morning", "09:00", "12:00", false),
		shippingSlot(t, "afternoon", "13:00", "18:00", true),
	})

	t.Run("instant inside the second slot", func(t *testing.T) {
		slot, ok := set.ResolveAt(mustTime(t, "14:00"))
		require.True(t, ok)
		assert.Equal(t, "afternoon", slot.ID())
		assert.True(t, slot.FreeShipping())
	})

	t.Run("gap between slots yields no match", func(t *testing.T) {
		_, ok := set.ResolveAt(mustTime(t, "12:30"))
		assert.False(t, ok)
	})

	t.Run("inclusive bounds", func(t *testing.T) {
		slot, ok := set.ResolveAt(mustTime(t, "12:00"))
		require.True(t, ok)
		assert.Equal(t, "morning", slot.ID())

		slot, ok = set.ResolveAt(mustTime(t, "13:00"))
		require.True(t, ok)
		assert.Equal(t, "afternoon", slot.ID())
	})

	t.Run("first match in stored order wins on overlapping input", func(t *testing.T) {
		// The resolver does not re-validate; it trusts stored order.
		overlapping := timeslot.NewSlotSet("beverages", true, []timeslot.Slot{
			shippingSlot(t, "second", "10:00", "12:00", false),
			shippingSlot(t, "first", "09:00", "11:00", true),
		})
		slot, ok := overlapping.ResolveAt(mustTime(t, "10:30"))
		require.True(t, ok)
		assert.Equal(t, "second", slot.ID())
	})

	t.Run("empty set never matches", func(t *testing.T) {
		empty := timeslot.NewSlotSet("beverages", true, nil)
		_, ok := empty.ResolveAt(mustTime(t, "10:00"))
		assert.False(t, ok)
	})
}

func TestSlotSetOrderPreserved(t *testing.T) {
	slots := []timeslot.Slot{
		shippingSlot(t, "b", "13:00", "18:00", false),
		shippingSlot(t, "a", "09:00", "12:00", false),
	}
	set := timeslot.NewSlotSet("beverages", true, slots)

	stored := set.Slots()
	require.Len(t, stored, 2)
	assert.Equal(t, "b", stored[0].ID())
	assert.Equal(t, "a", stored[1].ID())

	// Mutating the returned slice must not leak into the set.
	stored[0] = stored[1]
	assert.Equal(t, "b", set.Slots()[0].ID())
}
