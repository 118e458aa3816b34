package impl

import (
	"io"
	"log/slog"

	"github.com/Bilal-EZ-ZAIM/devopes/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(fields []string, guardMaxDistance float64) *config.Config {
	return &config.Config{
		Search: &config.SearchConfig{
			Fields:           fields,
			GuardMaxDistance: guardMaxDistance,
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
