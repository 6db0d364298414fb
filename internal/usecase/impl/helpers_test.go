package impl

import (
	"io"
	"log/slog"

	"firetrace/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Scan: &config.ScanConfig{
			ConfidenceThreshold: 0.8,
			ValidLabel:          "valid",
			LocalitySuffix:      "Barangay 105 Zone 11, Pasay City, Philippines",
			HistoryPageSize:     2,
		},
	}
}
