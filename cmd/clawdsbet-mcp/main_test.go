package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"sigs.k8s.io/yaml"

	"github.com/roivaz/clawdsbet-mcp/internal/config"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func TestToolsCommandYAML(t *testing.T) {
	out, err := execute(t, newToolsCmd())
	require.NoError(t, err)

	asJSON, err := yaml.YAMLToJSON([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, int64(8), gjson.GetBytes(asJSON, "tools.#").Int())
	assert.Equal(t, "get_leaderboard", gjson.GetBytes(asJSON, "tools.0.name").String())
}

func TestToolsCommandRejectsUnknownFormat(t *testing.T) {
	out, err := execute(t, newToolsCmd(), "--output", "xml")
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestCallCommand(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/markets/categories" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, "missing")
			return
		}
		_, _ = io.WriteString(w, `["crypto"]`)
	}))
	t.Cleanup(upstream.Close)

	viper.Reset()
	t.Cleanup(viper.Reset)
	config.Init(nil)
	viper.Set(config.KeyAPIURL, upstream.URL+"/api")

	out, err := execute(t, newCallCmd(), "get_categories")
	require.NoError(t, err)
	assert.Contains(t, out, `"crypto"`)

	out, err = execute(t, newCallCmd(), "get_bot_stats", "--args", `{"bot_id":"x"}`)
	require.Error(t, err)
	assert.Equal(t, "Error: API error (404): missing\n", out)

	out, err = execute(t, newCallCmd(), "get_bot_stats", "--args", `not json`)
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestHealthCommand(t *testing.T) {
	for status, healthy := range map[string]bool{"healthy": true, "degraded": false} {
		t.Run(status, func(t *testing.T) {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"status":"`+status+`"}`)
			}))
			t.Cleanup(upstream.Close)

			viper.Reset()
			t.Cleanup(viper.Reset)
			config.Init(nil)
			viper.Set(config.KeyHealthURL, upstream.URL+"/health")

			out, err := execute(t, newHealthCmd())
			assert.Equal(t, status+"\n", out)
			if healthy {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
