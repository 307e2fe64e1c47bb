package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. Used as the per-invocation run ID.
var NewULID = func() string {
	return ulid.Make().String()
}
