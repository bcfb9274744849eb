package route

import (
	"fmt"
	"strings"
)

// Limits bounds the accepted input. Zero values are replaced by
// DefaultLimits fields so a partially filled struct stays usable.
type Limits struct {
	MaxAddresses  int
	MaxAddressLen int
	PriorityMin   int
	PriorityMax   int
}

// DefaultLimits returns the documented input bounds.
func DefaultLimits() Limits {
	return Limits{
		MaxAddresses:  50,
		MaxAddressLen: 500,
		PriorityMin:   1,
		PriorityMax:   5,
	}
}

func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.MaxAddresses <= 0 {
		l.MaxAddresses = d.MaxAddresses
	}
	if l.MaxAddressLen <= 0 {
		l.MaxAddressLen = d.MaxAddressLen
	}
	if l.PriorityMin <= 0 {
		l.PriorityMin = d.PriorityMin
	}
	if l.PriorityMax < l.PriorityMin {
		l.PriorityMax = d.PriorityMax
	}
	return l
}

// Normalize validates and canonicalizes a raw request. Pure: no side
// effects, idempotent on already-normalized input.
//
// Policy (documented, not implicit):
//   - address strings are whitespace-trimmed; blank or over-long ones rejected
//   - priority 0 (omitted) defaults to Limits.PriorityMin; explicit
//     out-of-range values are rejected, not clamped
//   - unknown weather maps to "clear" ("sunny" is an accepted alias),
//     unknown traffic maps to "moderate"
//   - special requirements are trimmed, lower-cased, deduplicated,
//     first occurrence order preserved
//   - warehouse delays must be non-negative; blank warehouse ids rejected
func Normalize(raw RawRequest, limits Limits) (Request, error) {
	limits = limits.withDefaults()

	if len(raw.Addresses) == 0 {
		return Request{}, NewValidationError("addresses", "must not be empty")
	}
	if len(raw.Addresses) > limits.MaxAddresses {
		return Request{}, NewValidationError("addresses",
			fmt.Sprintf("at most %d addresses are allowed", limits.MaxAddresses))
	}

	addresses := make([]Address, len(raw.Addresses))
	for i, a := range raw.Addresses {
		field := fmt.Sprintf("addresses[%d]", i)

		addr := strings.TrimSpace(a.Address)
		if addr == "" {
			return Request{}, NewValidationError(field+".address", "must not be blank")
		}
		if len(addr) > limits.MaxAddressLen {
			return Request{}, NewValidationError(field+".address",
				fmt.Sprintf("must be at most %d characters", limits.MaxAddressLen))
		}

		priority := a.Priority
		if priority == 0 {
			priority = limits.PriorityMin
		}
		if priority < limits.PriorityMin || priority > limits.PriorityMax {
			return Request{}, NewValidationError(field+".priority",
				fmt.Sprintf("must be between %d and %d", limits.PriorityMin, limits.PriorityMax))
		}

		addresses[i] = Address{Address: addr, Priority: priority}
	}

	weather := normalizeWeather(raw.Weather)
	traffic := normalizeTraffic(raw.Traffic)
	requirements := normalizeRequirements(raw.SpecialRequirements)

	delays, err := normalizeDelays(raw.WarehouseDelays)
	if err != nil {
		return Request{}, err
	}

	return Request{
		Addresses:           addresses,
		Weather:             weather,
		Traffic:             traffic,
		SpecialRequirements: requirements,
		WarehouseDelays:     delays,
	}, nil
}

func normalizeWeather(raw string) Weather {
	switch Weather(strings.ToLower(strings.TrimSpace(raw))) {
	case WeatherRain:
		return WeatherRain
	case WeatherSnow:
		return WeatherSnow
	case WeatherFog:
		return WeatherFog
	default:
		// "sunny" alias, empty, and unknown values all map to clear.
		return WeatherClear
	}
}

func normalizeTraffic(raw string) Traffic {
	switch Traffic(strings.ToLower(strings.TrimSpace(raw))) {
	case TrafficLight:
		return TrafficLight
	case TrafficHeavy:
		return TrafficHeavy
	default:
		return TrafficModerate
	}
}

func normalizeRequirements(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		r = strings.ToLower(strings.TrimSpace(r))
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func normalizeDelays(raw map[string]int) (map[string]int, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	out := make(map[string]int, len(raw))
	for id, minutes := range raw {
		key := strings.TrimSpace(id)
		if key == "" {
			return nil, NewValidationError("warehouse_delays", "warehouse id must not be blank")
		}
		if minutes < 0 {
			return nil, NewValidationError("warehouse_delays."+key, "delay must not be negative")
		}
		out[key] = minutes
	}
	return out, nil
}
