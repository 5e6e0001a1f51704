package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
// A zero Length selects the configured default.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Lowercase *bool `json:"lowercase"`
	Uppercase *bool `json:"uppercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse represents a generated password together with its strength.
type GenerateResponse struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Strength StrengthResponse `json:"strength"`
}
