// File: utils/constants.go
package utils

import "time"

// SlotHoldPrefix is the prefix used for Redis slot-hold keys.
const SlotHoldPrefix = "hold:"

// DefaultSlotHold is the advisory hold window granted when a client
// begins the booking flow on an open slot.
const DefaultSlotHold = 30 * time.Minute
