package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string.
var NewULID = func() string {
	return ulid.Make().String()
}

// IsValid reports whether s is a canonical ULID string.
// Job ids end up in storage keys, so anything else is rejected.
func IsValid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
