// Package report - JSON serialization
package report

import (
	"encoding/json"
	"io"
	"os"

	"go.uber.org/zap"

	"gomeet-cost/internal/errors"
	"gomeet-cost/internal/logging"
)

// WriteFile serializes the report to an indented JSON file.
func WriteFile(r *Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Internal("failed to marshal report", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Output("failed to write report", err).WithContext("path", path)
	}

	logging.Info("report written",
		zap.String("path", path),
		zap.Int("bytes", len(data)))
	return nil
}

// Encode streams the report as indented JSON.
func Encode(r *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return errors.Output("failed to encode report", err)
	}
	return nil
}
