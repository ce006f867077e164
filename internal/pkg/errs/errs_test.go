//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"gaming-zone-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSlotTaken = errs.New("slot taken")

func TestMark(t *testing.T) {
	t.Run("keeps the cause message and adds identity", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		marked := errs.Mark(cause, errSlotTaken)

		assert.True(t, errs.Is(marked, errSlotTaken))
		assert.Equal(t, cause.Error(), marked.Error())
	})

	t.Run("nil cause yields the mark", func(t *testing.T) {
		assert.Equal(t, errSlotTaken, errs.Mark(nil, errSlotTaken))
	})
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ctx"))
	assert.NoError(t, errs.Wrapf(nil, "ctx %d", 1))
}

func TestRedact(t *testing.T) {
	err := errs.Wrap(errs.Newf("no account for %s", "asha@example.com"), "login")

	out := errs.Redact(err)
	assert.Contains(t, out, "login")
	assert.NotContains(t, out, "asha@example.com")
	assert.Empty(t, errs.Redact(nil))
}

func TestStackLines(t *testing.T) {
	err := errs.Wrap(errSlotTaken, "create booking")

	lines := errs.StackLines(err, 3)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "create booking")
	for _, l := range lines {
		assert.NotEmpty(t, l)
	}
	assert.Nil(t, errs.StackLines(nil, 3))
}
