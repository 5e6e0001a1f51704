// Package logger routes the standard log/slog API through zap.
package logger

import (
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

const (
	DevelopmentEnvironment = "development"
	ProductionEnvironment  = "production"
)

// Setup builds a zap logger for the environment and installs it as the slog default.
// Callers should Sync the returned logger before exiting.
func Setup(environment string) *zap.Logger {
	var (
		z   *zap.Logger
		err error
	)
	if environment == ProductionEnvironment {
		z, err = zap.NewProduction()
	} else {
		z, err = zap.NewDevelopment()
	}
	if err != nil {
		z = zap.NewNop()
	}

	slog.SetDefault(slog.New(zapslog.NewHandler(z.Core())))
	return z
}
