package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/baditaflorin/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_word2num/internal/adapters/logger"
)

func newTestServer(t *testing.T) *server {
	t.Helper()
	cfg := logger.DefaultConfig()
	cfg.Output = io.Discard
	cfg.AsyncWrite = false
	log, err := l.NewStandardFactory().CreateLogger(cfg)
	require.NoError(t, err)

	return newServer(Config{
		Address:        ":0",
		Language:       "en",
		FuzzyThreshold: 80,
		MatchCacheSize: 128,
		MaxBatchSize:   3,
		Workers:        2,
	}, log)
}

func do(s *server, method, path, body string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	s.handle(&ctx)
	return &ctx
}

func TestHealth(t *testing.T) {
	ctx := do(newTestServer(t), fasthttp.MethodGet, "/health", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), `"status":"ok"`)
}

func TestLanguages(t *testing.T) {
	s := newTestServer(t)

	ctx := do(s, fasthttp.MethodGet, "/languages", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var body struct {
		Languages []string `json:"languages"`
		Default   string   `json:"default"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
	assert.Equal(t, []string{"en", "es"}, body.Languages)
	assert.Equal(t, "en", body.Default)

	ctx = do(s, fasthttp.MethodPost, "/languages", "")
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
}

func TestParse(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name      string
		body      string
		wantValue *float64
		wantLang  string
	}{
		{"default language", `{"text":"two thousand nine hundred and fifty six"}`, ptr(2956), "en"},
		{"misspelled", `{"text":"fivve"}`, ptr(5), "en"},
		{"spanish", `{"text":"tres cuartos","language":"es"}`, ptr(0.75), "es"},
		{"exact only", `{"text":"fivve","fuzzy_threshold":100}`, nil, "en"},
		{"not a number", `{"text":"giraffe"}`, nil, "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := do(s, fasthttp.MethodPost, "/parse", tt.body)
			require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

			var resp ParseResponse
			require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
			assert.Equal(t, tt.wantLang, resp.Language)
			if tt.wantValue == nil {
				assert.False(t, resp.OK)
				assert.Nil(t, resp.Value)
				return
			}
			require.True(t, resp.OK)
			require.NotNil(t, resp.Value)
			assert.InDelta(t, *tt.wantValue, *resp.Value, 1e-9)
		})
	}
}

func TestParseErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		method string
		body   string
		status int
	}{
		{"wrong method", fasthttp.MethodGet, "", fasthttp.StatusMethodNotAllowed},
		{"bad json", fasthttp.MethodPost, `{"text":`, fasthttp.StatusBadRequest},
		{"unsupported language", fasthttp.MethodPost, `{"text":"one","language":"xx"}`, fasthttp.StatusBadRequest},
		{"invalid threshold", fasthttp.MethodPost, `{"text":"one","fuzzy_threshold":101}`, fasthttp.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := do(s, tt.method, "/parse", tt.body)
			assert.Equal(t, tt.status, ctx.Response.StatusCode())
			assert.Contains(t, string(ctx.Response.Body()), `"error"`)
		})
	}
}

func TestBatch(t *testing.T) {
	s := newTestServer(t)

	ctx := do(s, fasthttp.MethodPost, "/batch", `{"texts":["one point five","giraffe","minus eight"]}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp BatchResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	require.Len(t, resp.Results, 3)
	assert.Equal(t, 2, resp.Parsed)

	assert.Equal(t, "one point five", resp.Results[0].Text)
	require.NotNil(t, resp.Results[0].Value)
	assert.Equal(t, 1.5, *resp.Results[0].Value)
	assert.Nil(t, resp.Results[1].Value)
	require.NotNil(t, resp.Results[2].Value)
	assert.Equal(t, -8.0, *resp.Results[2].Value)

	ctx = do(s, fasthttp.MethodPost, "/batch", `{"texts":["a","b","c","d"]}`)
	assert.Equal(t, fasthttp.StatusRequestEntityTooLarge, ctx.Response.StatusCode())
}

func TestConvertersAreShared(t *testing.T) {
	s := newTestServer(t)

	a, err := s.converter("es", 70)
	require.NoError(t, err)
	b, err := s.converter("es", 70)
	require.NoError(t, err)
	assert.Same(t, a.converter, b.converter)

	c, err := s.converter("es", 60)
	require.NoError(t, err)
	assert.NotSame(t, a.converter, c.converter)
}

func TestNotFound(t *testing.T) {
	ctx := do(newTestServer(t), fasthttp.MethodGet, "/nope", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("WORD2NUM_ADDRESS", ":9090")
	t.Setenv("WORD2NUM_LANGUAGE", "es")
	t.Setenv("WORD2NUM_FUZZY_THRESHOLD", "65")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, "es", cfg.Language)
	assert.Equal(t, 65, cfg.FuzzyThreshold)
	assert.Equal(t, 4096, cfg.MatchCacheSize)
	assert.True(t, cfg.WarmUp)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("address: \":7070\"\nfuzzy_threshold: 90\nmax_batch_size: 50\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Address)
	assert.Equal(t, 90, cfg.FuzzyThreshold)
	assert.Equal(t, 50, cfg.MaxBatchSize)
	assert.Equal(t, "en", cfg.Language)
}

func TestLoadConfigRejectsInvalidThreshold(t *testing.T) {
	t.Setenv("WORD2NUM_FUZZY_THRESHOLD", "150")

	_, err := LoadConfig("")
	assert.Error(t, err)
}

func ptr(v float64) *float64 { return &v }
