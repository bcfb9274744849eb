package usecase

import (
	"math"

	"delivery-route-optimizer/internal/route"
)

// Condition penalties. Weather and traffic contribute independent
// multiplicative factors; the combined factor is bounded so extreme
// combinations cannot blow up the estimate.
var weatherFactor = map[route.Weather]float64{
	route.WeatherClear: 1.0,
	route.WeatherRain:  1.25,
	route.WeatherSnow:  1.5,
	route.WeatherFog:   1.35,
}

var trafficFactor = map[route.Traffic]float64{
	route.TrafficLight:    1.0,
	route.TrafficModerate: 1.2,
	route.TrafficHeavy:    1.5,
}

const maxConditionFactor = 2.5

// estimate computes the heuristic total-time range: base per-stop
// minutes scaled by the bounded condition factor times the number of
// stops. Warehouse delays widen the upper bound only. The result is
// advisory, never metrically exact.
func (uc *implUseCase) estimate(req route.Request) route.Estimate {
	factor := weatherFactor[req.Weather] * trafficFactor[req.Traffic]
	if factor > maxConditionFactor {
		factor = maxConditionFactor
	}

	base := float64(len(req.Addresses) * uc.cfg.BaseStopMinutes)
	lower := int(math.Ceil(base * factor))
	if lower < 1 {
		lower = 1
	}

	delaySum := 0
	for _, minutes := range req.WarehouseDelays {
		delaySum += minutes
	}

	upper := int(math.Ceil(float64(lower)*uc.cfg.SpreadFactor)) + delaySum
	if upper < lower {
		upper = lower
	}

	return route.Estimate{LowerMinutes: lower, UpperMinutes: upper}
}
