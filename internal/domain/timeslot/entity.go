package timeslot

import "errors"

var ErrSlotIDEmpty = errors.New("slot id required")

// Slot is one configured daily window with an attached free-shipping flag
// and an optional price. The id is assigned on first save and never
// changes; position is the display order within the owning set.
type Slot struct {
	id           string
	start        TimeOfDay
	end          TimeOfDay
	freeShipping bool
	price        *Price
	position     int
}

// NewSlot builds a slot without judging start against end. A slot with
// start == end is a zero-width window that covers exactly its own instant
// (both bounds are inclusive); the overlap check still weighs it against
// its neighbors.
func NewSlot(id string, start, end TimeOfDay, freeShipping bool, price *Price, position int) (Slot, error) {
	if id == "" {
		return Slot{}, ErrSlotIDEmpty
	}
	return Slot{
		id:           id,
		start:        start,
		end:          end,
		freeShipping: freeShipping,
		price:        price,
		position:     position,
	}, nil
}

func (s Slot) ID() string         { return s.id }
func (s Slot) Start() TimeOfDay   { return s.start }
func (s Slot) End() TimeOfDay     { return s.end }
func (s Slot) FreeShipping() bool { return s.freeShipping }
func (s Slot) Position() int      { return s.position }

func (s Slot) Price() (Price, bool) {
	if s.price == nil {
		return Price{}, false
	}
	return *s.price, true
}

// Covers reports whether the instant falls inside the window. Both ends
// are inclusive.
func (s Slot) Covers(t TimeOfDay) bool {
	return !t.Before(s.start) && !t.After(s.end)
}

// SlotSet is the ordered slot configuration of one product type. The
// stored order is semantic: resolution returns the first covering slot in
// this order, so the sequence is preserved as-is from configuration.
type SlotSet struct {
	productType string
	enabled     bool
	slots       []Slot
}

func NewSlotSet(productType string, enabled bool, slots []Slot) SlotSet {
	copied := make([]Slot, len(slots))
	copy(copied, slots)
	return SlotSet{
		productType: productType,
		enabled:     enabled,
		slots:       copied,
	}
}

func (s SlotSet) ProductType() string { return s.productType }
func (s SlotSet) Enabled() bool       { return s.enabled }
func (s SlotSet) Len() int            { return len(s.slots) }

func (s SlotSet) Slots() []Slot {
	copied := make([]Slot, len(s.slots))
	copy(copied, s.slots)
	return copied
}

// ResolveAt returns the first slot in stored order covering the instant.
// It never reports more than one match and performs no overlap
// re-validation; persistence is gated by Validate, and the resolver
// trusts its input.
func (s SlotSet) ResolveAt(t TimeOfDay) (Slot, bool) {
	for _, slot := range s.slots {
		if slot.Covers(t) {
			return slot, true
		}
	}
	return Slot{}, false
}

// Validate rejects the set when any two slots overlap.
func (s SlotSet) Validate() error {
	if result := CheckOverlap(s.slots); result.Overlapping {
		return &OverlapError{ConflictIndex: result.ConflictIndex}
	}
	return nil
}
