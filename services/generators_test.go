package services_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github/itish2003/smartcity/config"
	"github/itish2003/smartcity/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func readBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	var req map[string]any
	if err := json.Unmarshal(body, &req); err != nil {
		t.Fatalf("failed to unmarshal body: %v", err)
	}

	return req
}

func newWatsonxServer(t *testing.T, tokenCalls *atomic.Int32, generate http.HandlerFunc) (*httptest.Server, config.WatsonxConfig) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/identity/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "urn:ibm:params:oauth:grant-type:apikey", r.PostForm.Get("grant_type"))
		assert.Equal(t, "wx-key", r.PostForm.Get("apikey"))
		writeJSON(t, w, map[string]any{"access_token": "tok-123", "token_type": "Bearer", "expires_in": 3600})
	})
	mux.HandleFunc("/ml/v1/text/generation", generate)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, config.WatsonxConfig{
		URL:       srv.URL,
		APIKey:    "wx-key",
		ProjectID: "proj-1",
		ModelID:   "ibm/granite-test",
		IAMURL:    srv.URL + "/identity/token",
	}
}

func TestWatsonxGenerator_Generate(t *testing.T) {
	var (
		tokenCalls atomic.Int32
		mu         sync.Mutex
		prompts    []string
	)
	_, cfg := newWatsonxServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2023-05-29", r.URL.Query().Get("version"))
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		req := readBody(t, r)
		input, _ := req["input"].(string)
		mu.Lock()
		prompts = append(prompts, input)
		mu.Unlock()
		assert.Equal(t, "ibm/granite-test", req["model_id"])
		assert.Equal(t, "proj-1", req["project_id"])

		params, _ := req["parameters"].(map[string]any)
		assert.Equal(t, "sample", params["decoding_method"])
		assert.InDelta(t, 0.7, params["temperature"], 1e-9)
		assert.InDelta(t, 500, params["max_new_tokens"], 1e-9)

		writeJSON(t, w, map[string]any{
			"model_id": "ibm/granite-test",
			"results": []map[string]any{
				{"generated_text": "AQI stands for Air Quality Index.", "stop_reason": "eos_token"},
				{"generated_text": "other"},
			},
		})
	})

	gen, err := services.NewWatsonxGenerator(cfg, http.DefaultClient)
	require.NoError(t, err)

	params := testParams
	params.MaxNewTokens = 500

	got, err := gen.Generate(context.Background(), "What is AQI?", params)
	require.NoError(t, err)
	assert.Equal(t, []string{"AQI stands for Air Quality Index.", "other"}, got)

	_, err = gen.Generate(context.Background(), "again", params)
	require.NoError(t, err)
	assert.Equal(t, int32(1), tokenCalls.Load(), "token should be cached")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"What is AQI?", "again"}, prompts)
}

func TestWatsonxGenerator_Non200(t *testing.T) {
	var tokenCalls atomic.Int32
	_, cfg := newWatsonxServer(t, &tokenCalls, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"errors":[{"code":"authorization_rejected"}]}`, http.StatusForbidden)
	})

	gen, err := services.NewWatsonxGenerator(cfg, nil)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "hi", testParams)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestWatsonxGenerator_RequiresCredentials(t *testing.T) {
	_, err := services.NewWatsonxGenerator(config.WatsonxConfig{URL: "https://example.com"}, nil)
	require.ErrorIs(t, err, config.ErrMissingCredential)
}

func TestGeminiGenerator_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent"), r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		req := readBody(t, r)
		contents, _ := req["contents"].([]any)
		if assert.Len(t, contents, 1) {
			first, _ := contents[0].(map[string]any)
			parts, _ := first["parts"].([]any)
			if assert.Len(t, parts, 1) {
				part, _ := parts[0].(map[string]any)
				assert.Equal(t, "What is AQI?", part["text"])
			}
		}

		genConfig, _ := req["generationConfig"].(map[string]any)
		assert.InDelta(t, 0.7, genConfig["temperature"], 1e-6)
		assert.InDelta(t, 200, genConfig["maxOutputTokens"], 1e-9)

		writeJSON(t, w, map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"role": "model", "parts": []map[string]any{
					{"text": "AQI stands for "},
					{"text": "Air Quality Index."},
				}}},
			},
		})
	}))
	t.Cleanup(srv.Close)

	gen, err := services.NewGeminiGenerator(context.Background(), config.GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-test",
		BaseURL: srv.URL + "/",
	}, srv.Client())
	require.NoError(t, err)

	got, err := gen.Generate(context.Background(), "What is AQI?", testParams)
	require.NoError(t, err)
	assert.Equal(t, []string{"AQI stands for Air Quality Index."}, got)
}

func TestGeminiGenerator_KeepsCandidateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{
			"candidates": []map[string]any{
				{"finishReason": "SAFETY"},
				{"content": map[string]any{"role": "model", "parts": []map[string]any{{"text": "second"}}}},
			},
		})
	}))
	t.Cleanup(srv.Close)

	gen, err := services.NewGeminiGenerator(context.Background(), config.GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-test",
		BaseURL: srv.URL + "/",
	}, srv.Client())
	require.NoError(t, err)

	got, err := gen.Generate(context.Background(), "What is AQI?", testParams)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "second"}, got)
}

func TestGeminiGenerator_RequiresKey(t *testing.T) {
	_, err := services.NewGeminiGenerator(context.Background(), config.GeminiConfig{Model: "m"}, nil)
	require.ErrorIs(t, err, config.ErrMissingCredential)
}

func TestHuggingFaceGenerator_Generate(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/google/flan-t5-xl", r.URL.Path)
		assert.Contains(t, r.Header.Get("Authorization"), "hf-token")

		req := readBody(t, r)
		assert.Equal(t, "What is AQI?", req["inputs"])
		params, _ := req["parameters"].(map[string]any)
		assert.InDelta(t, 0.7, params["temperature"], 1e-9)
		assert.InDelta(t, 200, params["max_length"], 1e-9)

		writeJSON(t, w, []map[string]any{{"generated_text": "AQI stands for Air Quality Index."}})
	}))
	t.Cleanup(srv.Close)

	gen, err := services.NewHuggingFaceGenerator(config.HuggingFaceConfig{
		Token: "hf-token",
		Model: "google/flan-t5-xl",
		URL:   srv.URL,
	})
	require.NoError(t, err)

	got, err := gen.Generate(context.Background(), "What is AQI?", testParams)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "AQI stands for Air Quality Index.", got[0])
	assert.Equal(t, int32(1), calls.Load())
}

func TestHuggingFaceGenerator_RequiresToken(t *testing.T) {
	_, err := services.NewHuggingFaceGenerator(config.HuggingFaceConfig{Model: "m"})
	require.ErrorIs(t, err, config.ErrMissingCredential)
}

func TestNewTextGenerator_SelectsProvider(t *testing.T) {
	cfg := &config.Config{
		Provider: config.ProviderWatsonx,
		Watsonx: config.WatsonxConfig{
			URL: "https://example.com", APIKey: "k", ProjectID: "p", IAMURL: "https://example.com/token",
		},
	}
	gen, err := services.NewTextGenerator(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.NotNil(t, gen)

	cfg.Provider = "unknown"
	_, err = services.NewTextGenerator(context.Background(), cfg, nil)
	require.ErrorIs(t, err, config.ErrUnknownProvider)
}
