package impl

import (
	"io"
	"log/slog"

	"wallet/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(initialBalance float64) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 10,
		},
		Account: &config.AccountConfig{
			InitialBalance: initialBalance,
		},
	}
}
