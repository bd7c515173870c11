package models

type AskRequest struct {
	Query string `json:"query"`
}

// ActionRequest carries the optional text input of a UI action.
type ActionRequest struct {
	Input string `json:"input"`
}
