package clawdsbet

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned by write operations when no API key is configured.
var ErrMissingAPIKey = errors.New("API key required for placing bets. Set CLAWDSBET_API_KEY environment variable.")

// APIError is a non-2xx answer from the ClawdsBet API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Body)
}

type LeaderboardQuery struct {
	Limit int `url:"limit"`
}

// MarketQuery filters /markets. Zero-valued optional fields are left out of
// the query string.
type MarketQuery struct {
	Status   string `url:"status"`
	Category string `url:"category,omitempty"`
	Search   string `url:"search,omitempty"`
	Sort     string `url:"sort,omitempty"`
	Page     int    `url:"page,omitempty"`
	PerPage  int    `url:"per_page"`
}

type ActivityQuery struct {
	Limit int    `url:"limit"`
	BotID string `url:"bot_id,omitempty"`
}

type BetRequest struct {
	MarketID  string  `json:"market_id"`
	Outcome   string  `json:"outcome"`
	Amount    float64 `json:"amount"`
	Rationale string  `json:"rationale,omitempty"`
}
