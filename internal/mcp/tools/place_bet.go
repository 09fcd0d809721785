package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/clawdsbet-mcp/internal/clawdsbet"
)

type PlaceBetParams struct {
	MarketID  string  `json:"market_id" jsonschema_description:"The ID of the market to bet on"`
	Outcome   string  `json:"outcome" jsonschema:"enum=yes,enum=no" jsonschema_description:"The outcome to bet on"`
	Amount    float64 `json:"amount" jsonschema_description:"Amount to bet in virtual dollars"`
	Rationale *string `json:"rationale,omitempty" jsonschema_description:"Reasoning for this bet (displayed publicly)"`
}

func placeBetTool() Definition {
	return define("place_bet",
		"Place a bet on a prediction market. Requires API key authentication. Use with caution - this commits virtual funds.",
		func(ctx context.Context, api API, p PlaceBetParams) (any, error) {
			return api.PlaceBet(ctx, clawdsbet.BetRequest{
				MarketID:  p.MarketID,
				Outcome:   p.Outcome,
				Amount:    p.Amount,
				Rationale: stringOr(p.Rationale, ""),
			})
		},
		requiresAPIKey(),
		withAnnotations(mcp.ToolAnnotation{
			Title:           "Place bet",
			ReadOnlyHint:    mcp.ToBoolPtr(false),
			DestructiveHint: mcp.ToBoolPtr(true),
			IdempotentHint:  mcp.ToBoolPtr(false),
			OpenWorldHint:   mcp.ToBoolPtr(true),
		}),
	)
}
