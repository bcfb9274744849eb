package http

import (
	"github.com/gin-gonic/gin"

	"delivery-route-optimizer/pkg/response"
)

// Optimize godoc
// @Summary     Optimize a delivery route
// @Description Ranks the given addresses into a delivery order with an explanation and a total time estimate.
// @Tags        Routes
// @Accept      json
// @Produce     json
// @Param       body body optimizeReq true "Route request"
// @Success     200 {object} optimizeResp
// @Failure     400 {object} response.Resp "Bad Request - validation failure with field detail"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/routes/optimize [POST]
func (h *handler) Optimize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOptimizeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Optimize(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Optimize: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newOptimizeResp(output))
}

// Example godoc
// @Summary     Example request and response
// @Description Returns a canned optimize request together with the response shape it produces.
// @Tags        Routes
// @Produce     json
// @Success     200 {object} exampleResp
// @Router      /api/v1/routes/example [GET]
func (h *handler) Example(c *gin.Context) {
	response.OK(c, exampleResp{
		ExampleRequest: optimizeReq{
			Addresses: []addressReq{
				{Address: "123 Main St, Springfield", Priority: 5},
				{Address: "456 Oak Ave, Springfield", Priority: 2},
				{Address: "789 Pine Rd, Springfield", Priority: 4},
			},
			WeatherCondition:    "rain",
			TrafficCondition:    "heavy",
			SpecialRequirements: []string{"fragile items on second stop"},
			WarehouseDelays:     map[string]int{"warehouse_north": 15},
		},
		ExampleResponse: optimizeResp{
			OptimizedRoute: []string{
				"123 Main St, Springfield",
				"789 Pine Rd, Springfield",
				"456 Oak Ave, Springfield",
			},
			Stops: []stopResp{
				{Address: "123 Main St, Springfield", Priority: 5},
				{Address: "789 Pine Rd, Springfield", Priority: 4},
				{Address: "456 Oak Ave, Springfield", Priority: 2},
			},
			Explanation:        "Highest priority stop first; rain and heavy traffic add buffer time.",
			TotalEstimatedTime: "2h21m - 3h33m",
			EstimatedMinutes:   estimateResp{LowerMinutes: 141, UpperMinutes: 213},
		},
	})
}
