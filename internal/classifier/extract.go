package classifier

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const milesPerKilometer = 0.621371

var (
	// The leading group keeps "1.5 hours" from matching as "5 hours".
	durationRe = regexp.MustCompile(`(?i)(?:^|[^\d.])(\d+(?:\.\d+)?)[\s-]*(minutes|minute|mins|min|hours|hour|hrs|hr)\b`)
	distanceRe = regexp.MustCompile(`(?i)(?:^|[^\d.])(\d+(?:\.\d+)?)[\s-]*(miles|mile|kilometers|kilometer|km|k)\b`)
)

// paces in minutes per mile, keyed by exercise label
var paces = map[string]float64{
	"running":  10,
	"walking":  20,
	"cycling":  4,
	"hiking":   24,
	"swimming": 30,
}

const defaultPace = 12

// Extract pulls duration and distance out of raw. It never fails; absent values
// are left nil or empty.
func Extract(raw string) Fields {
	return Fields{
		DurationMinutes: extractDuration(raw),
		Distance:        extractDistance(raw),
	}
}

func extractDuration(raw string) *int {
	m := durationRe.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	if strings.HasPrefix(strings.ToLower(m[2]), "h") {
		n *= 60
	}
	minutes := int(math.Round(n))
	return &minutes
}

// extractDistance returns the number and unit exactly as written.
func extractDistance(raw string) string {
	loc := distanceRe.FindStringSubmatchIndex(raw)
	if loc == nil {
		return ""
	}
	return raw[loc[2]:loc[5]]
}

// EstimateDuration derives minutes from a distance using a fixed pace for the
// exercise type. It returns nil when distance cannot be read.
func EstimateDuration(distance, exerciseType string) *int {
	m := distanceRe.FindStringSubmatch(distance)
	if m == nil {
		return nil
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil || n <= 0 {
		return nil
	}
	miles := n
	if unit := strings.ToLower(m[2]); strings.HasPrefix(unit, "k") {
		miles = n * milesPerKilometer
	}

	pace, ok := paces[strings.ToLower(exerciseType)]
	if !ok {
		pace = defaultPace
	}
	minutes := int(math.Round(miles * pace))
	if minutes <= 0 {
		return nil
	}
	return &minutes
}
