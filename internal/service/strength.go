package service

import (
	"errors"
	"unicode/utf8"

	zxcvbn "github.com/ccojocar/zxcvbn-go"

	"github.com/vaultpass/passgen-go/internal/metrics"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/strength"
)

var ErrPasswordRequired = errors.New("password is required")

// estimateLimit caps the runes passed to zxcvbn. The heuristic score still covers the whole
// password.
const estimateLimit = 100

// StrengthService scores caller-supplied passwords.
type StrengthService struct {
	metrics *metrics.Metrics
}

// NewStrengthService creates a new StrengthService. m may be nil.
func NewStrengthService(m *metrics.Metrics) *StrengthService {
	return &StrengthService{metrics: m}
}

// Evaluate scores the password and attaches a zxcvbn estimate for reference. The estimate
// never influences the score, level or tag.
func (s *StrengthService) Evaluate(req model.StrengthRequest) (model.StrengthResponse, error) {
	if req.Password == "" {
		return model.StrengthResponse{}, ErrPasswordRequired
	}

	result := strength.Evaluate(req.Password)
	s.metrics.Evaluated(result.Tag)

	resp := toStrengthResponse(result)
	input, truncated := estimateInput(req.Password)
	match := zxcvbn.PasswordStrength(input, nil)
	resp.Estimate = &model.Estimate{
		Entropy:   match.Entropy,
		CrackTime: match.CrackTimeDisplay,
		Truncated: truncated,
	}

	return resp, nil
}

func toStrengthResponse(r strength.Result) model.StrengthResponse {
	return model.StrengthResponse{
		Score: r.Score,
		Level: r.Level.String(),
		Tag:   r.Tag,
	}
}

// estimateInput returns the first estimateLimit runes of password and whether it was cut.
func estimateInput(password string) (string, bool) {
	if utf8.RuneCountInString(password) <= estimateLimit {
		return password, false
	}
	n := 0
	for i := range password {
		if n == estimateLimit {
			return password[:i], true
		}
		n++
	}
	return password, false
}
