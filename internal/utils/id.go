package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// NewBookingID builds a booking id from the creation time plus a
// random 2-digit suffix so rapid successive calls stay unique.
func NewBookingID(now time.Time) string {
	return fmt.Sprintf("BK%s%02d", now.Format("20060102150405"), rand.Intn(100))
}
