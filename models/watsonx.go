package models

// WatsonxGenerationRequest is the body of a watsonx.ai text generation call.
type WatsonxGenerationRequest struct {
	Input      string         `json:"input"`
	ModelID    string         `json:"model_id"`
	ProjectID  string         `json:"project_id"`
	Parameters DecodingParams `json:"parameters"`
}

// WatsonxGenerationResponse holds the generated candidates.
type WatsonxGenerationResponse struct {
	ModelID string `json:"model_id"`
	Results []struct {
		GeneratedText  string `json:"generated_text"`
		StopReason     string `json:"stop_reason"`
		GeneratedCount int    `json:"generated_token_count"`
	} `json:"results"`
}

// IAMTokenResponse is returned by the IBM Cloud IAM token endpoint.
type IAMTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Expiration  int64  `json:"expiration"`
}
