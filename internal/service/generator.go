package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/metrics"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/strength"
)

// StatsRecorder stores generation events.
type StatsRecorder interface {
	Record(ctx context.Context, event *model.GenerationEvent) error
}

// Limits bounds the requested password length before it reaches the generator.
type Limits struct {
	Min     int
	Max     int
	Default int
}

// Clamp resolves a requested length: zero selects the default, anything else is pulled into
// [Min, Max].
func (l Limits) Clamp(length int) int {
	switch {
	case length == 0:
		return l.Default
	case length < l.Min:
		return l.Min
	case length > l.Max:
		return l.Max
	}
	return length
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen     *generator.Generator
	limits  Limits
	metrics *metrics.Metrics
	stats   StatsRecorder
}

// NewGeneratorService creates a new GeneratorService. m and stats may be nil.
func NewGeneratorService(gen *generator.Generator, limits Limits, m *metrics.Metrics, stats StatsRecorder) *GeneratorService {
	return &GeneratorService{
		gen:     gen,
		limits:  limits,
		metrics: m,
		stats:   stats,
	}
}

// Generate produces a password for the request and scores it. When no character class is
// enabled it returns generator.ErrEmptySelection and scores nothing.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	classes := ClassesFromFlags(
		boolOrDefault(req.Lowercase, true),
		boolOrDefault(req.Uppercase, true),
		boolOrDefault(req.Numbers, true),
		boolOrDefault(req.Symbols, true),
	)
	length := s.limits.Clamp(req.Length)

	password, err := s.gen.Generate(classes, length)
	if err != nil {
		if errors.Is(err, generator.ErrEmptySelection) {
			s.metrics.Failed("empty_selection")
		}
		return model.GenerateResponse{}, err
	}

	result := strength.Evaluate(password)
	s.metrics.Generated(result.Tag, length)
	s.record(ctx, classes, length, result)

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: toStrengthResponse(result),
	}, nil
}

func (s *GeneratorService) record(ctx context.Context, classes generator.Set, length int, result strength.Result) {
	if s.stats == nil {
		return
	}

	event := &model.GenerationEvent{
		Length:  length,
		Classes: uint8(classes),
		Score:   result.Score,
		Level:   result.Tag,
	}
	if err := s.stats.Record(ctx, event); err != nil {
		slog.Warn("recording generation event failed", "error", err)
	}
}

// ClassesFromFlags builds a class set from the four on/off selections.
func ClassesFromFlags(lower, upper, digits, symbols bool) generator.Set {
	var set generator.Set
	if lower {
		set = set.With(generator.Lower)
	}
	if upper {
		set = set.With(generator.Upper)
	}
	if digits {
		set = set.With(generator.Digit)
	}
	if symbols {
		set = set.With(generator.Symbol)
	}
	return set
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
