package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comunidad/feedquery/internal/config"
	"github.com/comunidad/feedquery/internal/record"
	"github.com/comunidad/feedquery/internal/source"
)

// ErrNoInputs is returned when a command that reads collections gets no
// --input flag.
var ErrNoInputs = errors.New("at least one --input is required")

// addInputFlag registers the repeatable --input flag.
func addInputFlag(cmd *cobra.Command, inputs *[]string) {
	cmd.Flags().StringSliceVarP(inputs, "input", "i", nil,
		"collection file (.json, .ndjson, .yaml); repeat to merge, '-' reads JSON from stdin")
}

// loadInputs loads and concatenates the collections named by inputs.
func loadInputs(ctx context.Context, inputs []string) ([]record.Record, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	records, err := source.LoadAll(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("loading collections: %w", err)
	}
	return records, nil
}

// resolveOutputFormat returns the --output value, or the configured default
// when the flag is empty, after checking it against allowed.
func resolveOutputFormat(flag string, cfg *config.Config, allowed ...string) (string, error) {
	format := flag
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	for _, a := range allowed {
		if format == a {
			return format, nil
		}
	}
	// NDJSON falls back to JSON for commands that render a single document.
	if format == config.FormatNDJSON && flag == "" {
		return config.FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", config.ErrInvalidFormat, format)
}
