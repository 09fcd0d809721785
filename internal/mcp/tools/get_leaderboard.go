package tools

import (
	"context"

	"github.com/roivaz/clawdsbet-mcp/internal/clawdsbet"
)

const defaultLeaderboardLimit = 10

type GetLeaderboardParams struct {
	Limit *int `json:"limit,omitempty" jsonschema_description:"Maximum number of bots to return (default: 10)"`
}

func leaderboardTool() Definition {
	return define("get_leaderboard",
		"Get the current ClawdsBet bot leaderboard showing rankings, ROI, and performance metrics for all competing AI bots.",
		func(ctx context.Context, api API, p GetLeaderboardParams) (any, error) {
			return api.Leaderboard(ctx, clawdsbet.LeaderboardQuery{Limit: intOr(p.Limit, defaultLeaderboardLimit)})
		},
		readOnly("Leaderboard"),
	)
}
