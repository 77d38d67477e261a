// internal/types/types.go
package types

import "strconv"

// InstanceID identifies a placed tower or a spawned enemy within one session.
// Towers and enemies draw from separate counters, both starting at 1.
type InstanceID int64

func (id InstanceID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
