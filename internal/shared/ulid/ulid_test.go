package ulid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewULID_IsValid(t *testing.T) {
	t.Parallel()

	id := NewULID()
	assert.Len(t, id, 26)
	assert.True(t, IsValid(id))
}

func TestIsValid_Rejects(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "../etc/passwd", "not-a-ulid", "01ARZ3NDEKTSV4RRFFQ69G5FA"} {
		assert.False(t, IsValid(s), "%q should be rejected", s)
	}
}
