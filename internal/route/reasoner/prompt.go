package reasoner

import (
	"fmt"
	"strings"

	"delivery-route-optimizer/internal/route"
)

// RouteRankingSystemPrompt is the system instruction sent to the LLM.
// The model acts as the contextual-adjustment module: it receives the
// deterministic inputs and proposes a reordering with a short
// justification, using heuristics instead of exact route math.
const RouteRankingSystemPrompt = `You are the route ranking module of a delivery route optimization service.

You receive a list of delivery addresses with customer priorities, plus simplified conditions: weather, traffic, warehouse delays, and special cargo requirements.

Propose an optimized delivery order as an ordered list of the given addresses with a short explanation of your reasoning. Use heuristics and judgement rather than exact mathematical route calculation.

STRICT OUTPUT RULES:
1. Respond ONLY with a JSON object. No markdown, no code blocks, no extra text.
2. "optimized_route" must contain every input address exactly once, copied verbatim.
3. "explanation" is one or two short sentences.

RESPONSE FORMAT:
{
    "optimized_route": ["address 1", "address 2", "address 3"],
    "explanation": "brief reasoning behind the ordering"
}`

// BuildRoutePrompt renders the normalized request as the user prompt.
func BuildRoutePrompt(req route.Request) string {
	var b strings.Builder

	b.WriteString("Delivery route ranking task.\n\nDELIVERY ADDRESSES:\n")
	for i, a := range req.Addresses {
		fmt.Fprintf(&b, "%d. %s (priority: %d/5)\n", i+1, a.Address, a.Priority)
	}

	b.WriteString("\nCONDITIONS:\n")
	fmt.Fprintf(&b, "- Weather: %s\n", req.Weather)
	fmt.Fprintf(&b, "- Traffic: %s\n", req.Traffic)

	if len(req.WarehouseDelays) > 0 {
		b.WriteString("- Warehouse delays:\n")
		for id, minutes := range req.WarehouseDelays {
			fmt.Fprintf(&b, "  * %s: +%d minutes\n", id, minutes)
		}
	}

	if len(req.SpecialRequirements) > 0 {
		fmt.Fprintf(&b, "- Special requirements: %s\n", strings.Join(req.SpecialRequirements, ", "))
	}

	b.WriteString(`
Determine the best delivery order considering:
1. Customer priorities
2. Weather conditions
3. Traffic
4. Warehouse delays
5. Special requirements

Answer with the JSON object only.`)

	return b.String()
}
