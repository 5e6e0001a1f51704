package model

// StrengthRequest represents a request to score a caller-supplied password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse carries the heuristic score, its level label and the style tag.
type StrengthResponse struct {
	Score    int       `json:"score"`
	Level    string    `json:"level"`
	Tag      string    `json:"tag"`
	Estimate *Estimate `json:"estimate,omitempty"`
}

// Estimate is an advisory zxcvbn estimate reported alongside the heuristic score. Truncated
// reports that only a prefix of the password was estimated.
type Estimate struct {
	Entropy   float64 `json:"entropy"`
	CrackTime string  `json:"crack_time"`
	Truncated bool    `json:"truncated,omitempty"`
}
