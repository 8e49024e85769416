package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
)

// SlotIDLength is the length of a persisted slot identifier:
// 10 random bytes hex-encoded into 20 characters.
const SlotIDLength = 20

// Generator produces stable slot identifiers. A slot keeps the id it was
// assigned on first save for its whole lifetime, so generation is a
// capability injected at the usecase boundary rather than a package-level
// randomness source.
type Generator interface {
	NewSlotID() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() Generator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewSlotID() (string, error) {
	buf := make([]byte, SlotIDLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// SequenceGenerator hands out predictable ids for tests.
type SequenceGenerator struct {
	mu   sync.Mutex
	next int
}

func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{}
}

func (g *SequenceGenerator) NewSlotID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := fmt.Sprintf("%020x", g.next)
	g.next++
	return id, nil
}
