package utils

import "strings"

// Class multipliers; unknown classes fall back to 1.0.
var classMultipliers = map[string]float64{
	"Sleeper": 1.0,
	"3AC":     1.8,
	"2AC":     2.5,
	"1AC":     4.0,
	"CC":      1.3,
}

// ComputeFare returns the per-seat price for a train and travel class.
// Base price derives from the digits of the train id (mod 500, plus
// 200) so it is stable across runs without any price table.
func ComputeFare(trainID, travelClass string) int {
	sum := 0
	for _, r := range trainID {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
		}
	}
	base := sum%500 + 200

	mult, ok := classMultipliers[strings.TrimSpace(travelClass)]
	if !ok {
		mult = 1.0
	}
	return int(float64(base) * mult)
}

// TravelClasses lists the classes a quote accepts, in display order.
func TravelClasses() []string {
	return []string{"Sleeper", "3AC", "2AC", "1AC", "CC"}
}
