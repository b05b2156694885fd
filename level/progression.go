// SPDX-License-Identifier: MIT

package level

import "fmt"

// Unlocked reports whether level id may be played. The first level in slice
// order is always open; any other level opens once the level before it is in
// completed. Unknown IDs are never unlocked.
func Unlocked(levels []Level, completed map[int]bool, id int) bool {
	for i, l := range levels {
		if l.ID != id {
			continue
		}

		return i == 0 || completed[levels[i-1].ID]
	}

	return false
}

// CheckUnlocked returns ErrLocked, naming the blocking level, when id is not
// yet playable.
func CheckUnlocked(levels []Level, completed map[int]bool, id int) error {
	if Unlocked(levels, completed, id) {
		return nil
	}
	for i, l := range levels {
		if l.ID == id && i > 0 {
			return fmt.Errorf("%w: level %d opens after level %d is completed", ErrLocked, id, levels[i-1].ID)
		}
	}

	return fmt.Errorf("%w: no level %d", ErrLocked, id)
}
