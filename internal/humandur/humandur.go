// Package humandur formats elapsed durations for humans, picking a unit
// suited to the duration's magnitude.
package humandur

import (
	"fmt"
	"time"
)

// Format renders d as, for example, "2.345s", "150ms", "12.345ms",
// "45µs" or "800ns".
func Format(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%d.%03ds", int64(d/time.Second), int64((d%time.Second)/time.Millisecond))
	case d >= 100*time.Millisecond:
		return fmt.Sprintf("%dms", int64(d/time.Millisecond))
	case d >= time.Millisecond:
		return fmt.Sprintf("%d.%03dms", int64(d/time.Millisecond), int64((d%time.Millisecond)/time.Microsecond))
	case d >= time.Microsecond:
		return fmt.Sprintf("%dµs", int64(d/time.Microsecond))
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
