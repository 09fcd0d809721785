package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/invopop/jsonschema"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/clawdsbet-mcp/internal/clawdsbet"
)

// API is the slice of the ClawdsBet client the tools call into.
type API interface {
	Leaderboard(ctx context.Context, q clawdsbet.LeaderboardQuery) (json.RawMessage, error)
	Markets(ctx context.Context, q clawdsbet.MarketQuery) (json.RawMessage, error)
	Categories(ctx context.Context) (json.RawMessage, error)
	Market(ctx context.Context, marketID string) (json.RawMessage, error)
	Bot(ctx context.Context, botID string) (json.RawMessage, error)
	Bets(ctx context.Context, q clawdsbet.ActivityQuery) (json.RawMessage, error)
	PlaceBet(ctx context.Context, bet clawdsbet.BetRequest) (json.RawMessage, error)
	SyncHealth(ctx context.Context) (json.RawMessage, error)
	SyncCursor(ctx context.Context) (json.RawMessage, error)
	HasAPIKey() bool
}

// Definition couples the advertised tool with the code that serves it. The
// input schema and the argument decoder are both derived from the same
// argument struct, so they cannot drift apart.
type Definition struct {
	Tool           mcp.Tool
	RequiresAPIKey bool

	required []string
	run      func(ctx context.Context, api API, args map[string]any) (any, error)
}

type toolOption func(*Definition)

func requiresAPIKey() toolOption {
	return func(d *Definition) { d.RequiresAPIKey = true }
}

func withAnnotations(a mcp.ToolAnnotation) toolOption {
	return func(d *Definition) { d.Tool.Annotations = a }
}

func readOnly(title string) toolOption {
	return withAnnotations(mcp.ToolAnnotation{
		Title:           title,
		ReadOnlyHint:    mcp.ToBoolPtr(true),
		DestructiveHint: mcp.ToBoolPtr(false),
		OpenWorldHint:   mcp.ToBoolPtr(true),
	})
}

func define[T any](name, description string, run func(ctx context.Context, api API, args T) (any, error), opts ...toolOption) Definition {
	schema := schemaFor[T]()
	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		panic(fmt.Sprintf("tools: marshal schema for %s: %v", name, err))
	}

	required := schema.Required
	def := Definition{
		Tool:     mcp.NewToolWithRawSchema(name, description, schemaJSON),
		required: required,
		run: func(ctx context.Context, api API, raw map[string]any) (any, error) {
			var args T
			if err := decodeArguments(raw, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments for %s: %w", name, err)
			}
			if err := checkRequired(raw, required); err != nil {
				return nil, err
			}
			return run(ctx, api, args)
		},
	}
	for _, opt := range opts {
		opt(&def)
	}
	return def
}

// Required returns the argument names the tool rejects calls without.
func (d Definition) Required() []string {
	return append([]string(nil), d.required...)
}

func schemaFor[T any]() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference:            true,
		ExpandedStruct:            true,
		Anonymous:                 true,
		AllowAdditionalProperties: true,
	}
	schema := r.Reflect(new(T))
	schema.Version = ""
	return schema
}

func decodeArguments(raw map[string]any, target any) error {
	if len(raw) == 0 {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

func checkRequired(raw map[string]any, required []string) error {
	for _, name := range required {
		value, ok := raw[name]
		if !ok || value == nil {
			return fmt.Errorf("%s is required", name)
		}
		if s, isString := value.(string); isString && s == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	return nil
}

// Registry returns every tool in the order it is advertised.
func Registry() []Definition {
	defs := []Definition{
		leaderboardTool(),
		marketsTool(),
		categoriesTool(),
		botStatsTool(),
		marketDetailsTool(),
		placeBetTool(),
		recentActivityTool(),
		syncStatusTool(),
	}
	seen := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		if _, dup := seen[d.Tool.Name]; dup {
			panic("tools: duplicate tool name " + d.Tool.Name)
		}
		seen[d.Tool.Name] = struct{}{}
	}
	return defs
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func stringOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}
