package property

import (
	"fmt"
	"strconv"
)

// NextRoomNumber derives the next free room number for a floor: the
// floor number concatenated with a zero-padded two-digit suffix one
// greater than the highest suffix currently in use. Existing rooms
// whose last two characters do not parse as a number are skipped.
// Past suffix 99 the padding simply widens ("5" + 100 -> "5100").
//
// The result is advisory. Two concurrent callers can derive the same
// number; the unique constraint on (floor_id, room_number) is the
// actual guard at insert time.
func NextRoomNumber(floorNumber int, existing []string) string {
	maxSuffix := 0

	for _, room := range existing {
		if len(room) < 2 {
			continue
		}

		suffix, err := strconv.Atoi(room[len(room)-2:])
		if err != nil {
			continue
		}

		if suffix > maxSuffix {
			maxSuffix = suffix
		}
	}

	return fmt.Sprintf("%d%02d", floorNumber, maxSuffix+1)
}
