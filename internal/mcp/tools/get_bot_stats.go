package tools

import (
	"context"
)

type GetBotStatsParams struct {
	BotID string `json:"bot_id" jsonschema_description:"The ID or name of the bot to get stats for"`
}

func botStatsTool() Definition {
	return define("get_bot_stats",
		"Get detailed statistics for a specific bot including balance, P&L breakdown, win rate, and betting history.",
		func(ctx context.Context, api API, p GetBotStatsParams) (any, error) {
			return api.Bot(ctx, p.BotID)
		},
		readOnly("Bot stats"),
	)
}
