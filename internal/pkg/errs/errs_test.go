//go:build unit

package errs_test

import (
	stderrors "errors"
	"testing"

	"price-in-time/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIs_SeesMarkedSentinel(t *testing.T) {
	err := errs.Mark(errs.New("parse failed"), errs.ErrDomainValidation)

	// The mark is not part of the Unwrap chain, so the stdlib walk
	// misses it; Is must still match.
	assert.False(t, stderrors.Is(err, errs.ErrDomainValidation))
	assert.True(t, errs.Is(err, errs.ErrDomainValidation))
}

func TestIs_SeesWrappedSentinel(t *testing.T) {
	err := errs.Wrap(errs.ErrSlotSetNotFound, "loading config")

	assert.True(t, errs.Is(err, errs.ErrSlotSetNotFound))
	assert.False(t, errs.Is(err, errs.ErrDomainValidation))
}

func TestMark_NilReturnsSentinel(t *testing.T) {
	assert.Equal(t, errs.ErrDomainValidation, errs.Mark(nil, errs.ErrDomainValidation))
}
