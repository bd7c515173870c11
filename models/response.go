package models

type AskResponse struct {
	Answer    string `json:"answer"`
	RequestID string `json:"requestID"`
	Error     string `json:"error,omitempty"`
}

type ReportResponse struct {
	Report string `json:"report"`
}

// ActionResponse wraps whatever a dispatched action produced.
type ActionResponse struct {
	Action string `json:"action"`
	Result any    `json:"result"`
}
