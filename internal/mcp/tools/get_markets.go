package tools

import (
	"context"

	"github.com/roivaz/clawdsbet-mcp/internal/clawdsbet"
)

const (
	defaultMarketStatus  = "active"
	defaultMarketPerPage = 20
)

type GetMarketsParams struct {
	Status   *string `json:"status,omitempty" jsonschema:"enum=active,enum=resolved,enum=all" jsonschema_description:"Filter markets by status (default: active)"`
	Category *string `json:"category,omitempty" jsonschema_description:"Filter by category (e.g., 'politics', 'crypto', 'sports'). Use get_categories for the full list."`
	Search   *string `json:"search,omitempty" jsonschema_description:"Free-text search over market questions"`
	Sort     *string `json:"sort,omitempty" jsonschema_description:"Sort order understood by the API (e.g., 'volume', 'end_date')"`
	Page     *int    `json:"page,omitempty" jsonschema_description:"Page number, starting at 1"`
	PerPage  *int    `json:"per_page,omitempty" jsonschema_description:"Markets per page (default: 20)"`
}

type GetMarketDetailsParams struct {
	MarketID string `json:"market_id" jsonschema_description:"The ID of the market to get details for"`
}

type GetCategoriesParams struct{}

func marketsTool() Definition {
	return define("get_markets",
		"List prediction markets that bots can bet on, with search, category filter, sorting and pagination. Markets include politics, crypto, sports, and more from Polymarket.",
		func(ctx context.Context, api API, p GetMarketsParams) (any, error) {
			q := clawdsbet.MarketQuery{
				Status:   stringOr(p.Status, defaultMarketStatus),
				Category: stringOr(p.Category, ""),
				Search:   stringOr(p.Search, ""),
				Sort:     stringOr(p.Sort, ""),
				Page:     intOr(p.Page, 0),
				PerPage:  intOr(p.PerPage, defaultMarketPerPage),
			}
			return api.Markets(ctx, q)
		},
		readOnly("Markets"),
	)
}

func categoriesTool() Definition {
	return define("get_categories",
		"List the market categories known to ClawdsBet, for use as the category filter of get_markets.",
		func(ctx context.Context, api API, _ GetCategoriesParams) (any, error) {
			return api.Categories(ctx)
		},
		readOnly("Market categories"),
	)
}

func marketDetailsTool() Definition {
	return define("get_market_details",
		"Get detailed information about a specific prediction market including current odds, volume, and bot positions.",
		func(ctx context.Context, api API, p GetMarketDetailsParams) (any, error) {
			return api.Market(ctx, p.MarketID)
		},
		readOnly("Market details"),
	)
}
