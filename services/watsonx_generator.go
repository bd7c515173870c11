package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github/itish2003/smartcity/config"
	"github/itish2003/smartcity/models"
)

const (
	watsonxGenerationPath    = "/ml/v1/text/generation"
	watsonxAPIVersion        = "2023-05-29"
	iamGrantTypeAPIKey       = "urn:ibm:params:oauth:grant-type:apikey"
	tokenRefreshBeforeExpiry = time.Minute
)

// watsonxGenerator calls IBM watsonx.ai. The IAM bearer token is cached and
// refreshed a minute before it expires.
type watsonxGenerator struct {
	httpClient *http.Client
	cfg        config.WatsonxConfig

	mu     sync.Mutex
	token  string
	expiry time.Time
	now    func() time.Time
}

func NewWatsonxGenerator(cfg config.WatsonxConfig, httpClient *http.Client) (TextGenerator, error) {
	if cfg.URL == "" || cfg.APIKey == "" || cfg.ProjectID == "" {
		return nil, fmt.Errorf("%w: watsonx url, api key and project id are required", config.ErrMissingCredential)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &watsonxGenerator{
		httpClient: httpClient,
		cfg:        cfg,
		now:        time.Now,
	}, nil
}

func (w *watsonxGenerator) Generate(ctx context.Context, prompt string, params models.DecodingParams) ([]string, error) {
	token, err := w.bearerToken(ctx)
	if err != nil {
		return nil, err
	}

	reqBody, err := json.Marshal(models.WatsonxGenerationRequest{
		Input:      prompt,
		ModelID:    w.cfg.ModelID,
		ProjectID:  w.cfg.ProjectID,
		Parameters: params,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal watsonx request: %w", err)
	}

	endpoint := w.cfg.URL + watsonxGenerationPath + "?version=" + watsonxAPIVersion
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create watsonx http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := w.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call watsonx generation api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("watsonx api returned non-200 status: %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var genResp models.WatsonxGenerationResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, fmt.Errorf("failed to decode watsonx response: %w", err)
	}

	candidates := make([]string, 0, len(genResp.Results))
	for _, r := range genResp.Results {
		candidates = append(candidates, r.GeneratedText)
	}
	return candidates, nil
}

func (w *watsonxGenerator) bearerToken(ctx context.Context) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.token != "" && w.now().Before(w.expiry) {
		return w.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", iamGrantTypeAPIKey)
	form.Set("apikey", w.cfg.APIKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.IAMURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create iam token request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := w.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call iam token api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("iam token api returned non-200 status: %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var tokenResp models.IAMTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode iam token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("iam token response has no access_token")
	}

	w.token = tokenResp.AccessToken
	w.expiry = w.now().Add(time.Duration(tokenResp.ExpiresIn)*time.Second - tokenRefreshBeforeExpiry)
	return w.token, nil
}
