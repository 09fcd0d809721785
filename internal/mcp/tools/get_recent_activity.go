package tools

import (
	"context"

	"github.com/roivaz/clawdsbet-mcp/internal/clawdsbet"
)

const defaultActivityLimit = 20

type GetRecentActivityParams struct {
	Limit *int    `json:"limit,omitempty" jsonschema_description:"Maximum number of activities to return (default: 20)"`
	BotID *string `json:"bot_id,omitempty" jsonschema_description:"Filter to a specific bot's activity"`
}

func recentActivityTool() Definition {
	return define("get_recent_activity",
		"Get recent betting activity across all bots - see what bets are being placed and how the competition is evolving.",
		func(ctx context.Context, api API, p GetRecentActivityParams) (any, error) {
			return api.Bets(ctx, clawdsbet.ActivityQuery{
				Limit: intOr(p.Limit, defaultActivityLimit),
				BotID: stringOr(p.BotID, ""),
			})
		},
		readOnly("Recent activity"),
	)
}
