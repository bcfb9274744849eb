package http

import (
	"delivery-route-optimizer/internal/route"
)

type addressReq struct {
	Address  string `json:"address"`
	Priority int    `json:"priority,omitempty"`
}

type optimizeReq struct {
	Addresses           []addressReq   `json:"addresses"`
	WeatherCondition    string         `json:"weather_condition"`
	TrafficCondition    string         `json:"traffic_condition"`
	SpecialRequirements []string       `json:"special_requirements"`
	WarehouseDelays     map[string]int `json:"warehouse_delays"`
}

func (r optimizeReq) toInput() route.RawRequest {
	addresses := make([]route.Address, 0, len(r.Addresses))
	for _, a := range r.Addresses {
		addresses = append(addresses, route.Address{
			Address:  a.Address,
			Priority: a.Priority,
		})
	}
	return route.RawRequest{
		Addresses:           addresses,
		Weather:             r.WeatherCondition,
		Traffic:             r.TrafficCondition,
		SpecialRequirements: r.SpecialRequirements,
		WarehouseDelays:     r.WarehouseDelays,
	}
}

type stopResp struct {
	Address  string `json:"address"`
	Priority int    `json:"priority"`
}

type estimateResp struct {
	LowerMinutes int `json:"lower_minutes"`
	UpperMinutes int `json:"upper_minutes"`
}

type optimizeResp struct {
	OptimizedRoute     []string     `json:"optimized_route"`
	Stops              []stopResp   `json:"stops"`
	Explanation        string       `json:"explanation"`
	TotalEstimatedTime string       `json:"total_estimated_time"`
	EstimatedMinutes   estimateResp `json:"estimated_minutes"`
}

func (h *handler) newOptimizeResp(d route.Decision) optimizeResp {
	addresses := make([]string, 0, len(d.Route))
	stops := make([]stopResp, 0, len(d.Route))
	for _, a := range d.Route {
		addresses = append(addresses, a.Address)
		stops = append(stops, stopResp{Address: a.Address, Priority: a.Priority})
	}
	return optimizeResp{
		OptimizedRoute:     addresses,
		Stops:              stops,
		Explanation:        d.Explanation,
		TotalEstimatedTime: d.Estimate.Display(),
		EstimatedMinutes: estimateResp{
			LowerMinutes: d.Estimate.LowerMinutes,
			UpperMinutes: d.Estimate.UpperMinutes,
		},
	}
}

type exampleResp struct {
	ExampleRequest  optimizeReq  `json:"example_request"`
	ExampleResponse optimizeResp `json:"example_response"`
}
