package models

// DecodingMethodSample is the only decoding strategy the assistant uses.
const DecodingMethodSample = "sample"

// DecodingParams controls how the remote model generates text.
type DecodingParams struct {
	Method       string  `json:"decoding_method"`
	Temperature  float64 `json:"temperature"`
	MaxNewTokens int     `json:"max_new_tokens"`
}
