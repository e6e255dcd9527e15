package interfaces

import "time"

// IClock supplies "now" to the use cases so that days-on-market figures and
// log timestamps are deterministic under test.
type IClock interface {
	Now() time.Time
}
