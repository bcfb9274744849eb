package route

import (
	"fmt"
	"time"
)

// Weather is the canonical weather condition.
type Weather string

const (
	WeatherClear Weather = "clear"
	WeatherRain  Weather = "rain"
	WeatherSnow  Weather = "snow"
	WeatherFog   Weather = "fog"
)

// Traffic is the canonical traffic condition.
type Traffic string

const (
	TrafficLight    Traffic = "light"
	TrafficModerate Traffic = "moderate"
	TrafficHeavy    Traffic = "heavy"
)

// Address is a single delivery stop: free-text address plus urgency.
// Higher priority means more urgent. Priorities need not be unique.
type Address struct {
	Address  string
	Priority int
}

// RawRequest is the inbound request before normalization. Weather and
// traffic arrive as free text; unknown values map to documented defaults.
type RawRequest struct {
	Addresses           []Address
	Weather             string
	Traffic             string
	SpecialRequirements []string
	WarehouseDelays     map[string]int // warehouse id -> delay minutes
}

// Request is a normalized route request. Produced only by Normalize.
type Request struct {
	Addresses           []Address
	Weather             Weather
	Traffic             Traffic
	SpecialRequirements []string
	WarehouseDelays     map[string]int
}

// Estimate is the heuristic total-time range in minutes.
// Invariant: 0 < LowerMinutes <= UpperMinutes.
type Estimate struct {
	LowerMinutes int
	UpperMinutes int
}

// Display renders the range as a human-readable string, e.g. "1h40m - 2h20m".
func (e Estimate) Display() string {
	lower := time.Duration(e.LowerMinutes) * time.Minute
	upper := time.Duration(e.UpperMinutes) * time.Minute
	if e.LowerMinutes == e.UpperMinutes {
		return fmtDuration(lower)
	}
	return fmt.Sprintf("%s - %s", fmtDuration(lower), fmtDuration(upper))
}

func fmtDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}

// Decision is the engine output: a permutation of the input addresses,
// a non-empty explanation, and the time estimate. Constructed fresh per
// request and never persisted.
type Decision struct {
	Route       []Address
	Explanation string
	Estimate    Estimate
}

// AdjustmentSignal is the advisory output of the reasoning provider:
// a candidate reordering (by address string) and/or explanatory text.
// It must pass permutation validation before being accepted.
type AdjustmentSignal struct {
	Reordering  []string
	Explanation string
}
