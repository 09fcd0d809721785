package tools

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"
)

type GetSyncStatusParams struct{}

// SyncStatus merges the two monitoring endpoints. Both payloads are passed
// through untouched.
type SyncStatus struct {
	Health json.RawMessage `json:"health"`
	Cursor json.RawMessage `json:"cursor"`
}

func syncStatusTool() Definition {
	return define("get_sync_status",
		"Get the health of the Polymarket market sync together with the current discovery cursor position.",
		func(ctx context.Context, api API, _ GetSyncStatusParams) (any, error) {
			return fetchSyncStatus(ctx, api)
		},
		readOnly("Sync status"),
	)
}

// fetchSyncStatus queries both endpoints concurrently. Either failure fails
// the whole call.
func fetchSyncStatus(ctx context.Context, api API) (SyncStatus, error) {
	var status SyncStatus
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		health, err := api.SyncHealth(gctx)
		status.Health = health
		return err
	})
	g.Go(func() error {
		cursor, err := api.SyncCursor(gctx)
		status.Cursor = cursor
		return err
	})
	if err := g.Wait(); err != nil {
		return SyncStatus{}, err
	}
	return status, nil
}
