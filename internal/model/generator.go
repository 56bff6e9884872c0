package model

import "encoding/json"

// GenerateRequest represents a password generation request.
// Length is kept raw so a missing, null or non-numeric value can be told apart.
// Pointer bools allow distinguishing between missing (nil -> default) and explicit false.
type GenerateRequest struct {
	Complexity string          `json:"complexity"`
	Length     json.RawMessage `json:"length"`
	Uppercase  *bool           `json:"uppercase"`
	Numbers    *bool           `json:"numbers"`
	Special    *bool           `json:"special"`
}

// BatchGenerateRequest represents a batch generation request.
// Count is kept raw for the same reason as Length.
type BatchGenerateRequest struct {
	GenerateRequest
	Count json.RawMessage `json:"count"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Success  bool   `json:"success"`
	Password string `json:"password"`
	Length   int    `json:"length"`
}

// BatchGenerateResponse represents a batch generation response.
type BatchGenerateResponse struct {
	Success   bool     `json:"success"`
	Passwords []string `json:"passwords"`
	Count     int      `json:"count"`
}

// TierResponse describes one complexity tier.
type TierResponse struct {
	Name          string   `json:"name"`
	Aliases       []string `json:"aliases,omitempty"`
	DefaultLength int      `json:"default_length"`
	MinLength     int      `json:"min_length"`
	MaxLength     int      `json:"max_length"`
	AlphabetSize  int      `json:"alphabet_size,omitempty"`
}

// TiersResponse lists the available complexity tiers.
type TiersResponse struct {
	Success bool           `json:"success"`
	Tiers   []TierResponse `json:"tiers"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
