package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(ErrSlotTaken())
	assert.True(t, ok)
	assert.Equal(t, KindSlotTaken, kind)

	_, ok = KindOf(errors.New("qualquer"))
	assert.False(t, ok)
}

func TestIsBusiness_Wrapped(t *testing.T) {
	err := fmt.Errorf("contexto: %w", ErrNotEligible("too_close_to_start", "..."))

	assert.True(t, IsBusiness(err, "too_close_to_start"))
	assert.True(t, IsKind(err, KindNotEligible))
	assert.False(t, IsBusiness(err, "outro_codigo"))
}

func TestErrStorage_PreservesCause(t *testing.T) {
	cause := errors.New("driver: connection refused")
	err := ErrStorage(cause)

	assert.True(t, IsKind(err, KindStorage))
	assert.ErrorIs(t, err, cause)
}
