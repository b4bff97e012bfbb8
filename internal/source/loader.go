package source

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/comunidad/feedquery/internal/logging"
	"github.com/comunidad/feedquery/internal/record"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Loader errors, comparable with errors.Is.
var (
	ErrUnsupportedFormat = constError("unsupported collection format")
	ErrNotACollection    = constError("document is not a collection of records")
)

// Format is a collection encoding.
type Format string

// Supported formats.
const (
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
	FormatYAML   Format = "yaml"
)

// Stdin is the path that selects standard input (JSON).
const Stdin = "-"

// envelopeKeys are the object keys that may wrap a collection, as returned
// by paginated or wrapped REST responses.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envelopeKeys = []string{"data", "items"}

// DetectFormat picks a format from the file extension.
func DetectFormat(path string) (Format, error) {
	if path == Stdin {
		return FormatJSON, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".ndjson", ".jsonl":
		return FormatNDJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Load reads one collection from path. Stdin is read when path is "-".
func Load(ctx context.Context, path string) ([]record.Record, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	var r io.Reader
	if path == Stdin {
		r = os.Stdin
	} else {
		f, openErr := os.Open(path)
		if openErr != nil {
			return nil, fmt.Errorf("opening collection: %w", openErr)
		}
		defer f.Close()
		r = f
	}

	records, err := Decode(r, format)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	logging.FromContext(ctx).Debug().Ctx(ctx).
		Str("component", "source").
		Str("operation", "load").
		Str("path", path).
		Str("format", string(format)).
		Int("records", len(records)).
		Msg("loaded collection")

	return records, nil
}

// LoadAll loads every path concurrently and concatenates the collections in
// argument order. The first failure cancels the remaining loads.
func LoadAll(ctx context.Context, paths []string) ([]record.Record, error) {
	results := make([][]record.Record, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			recs, err := Load(gCtx, p)
			if err != nil {
				return err
			}
			results[i] = recs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, recs := range results {
		total += len(recs)
	}
	all := make([]record.Record, 0, total)
	for _, recs := range results {
		all = append(all, recs...)
	}
	return all, nil
}

// Decode reads a collection in the given format.
func Decode(r io.Reader, format Format) ([]record.Record, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(r)
	case FormatNDJSON:
		return decodeNDJSON(r)
	case FormatYAML:
		return decodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func decodeJSON(r io.Reader) ([]record.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []record.Record{}, nil
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return collection(doc)
}

func decodeNDJSON(r io.Reader) ([]record.Record, error) {
	records := []record.Record{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		var rec record.Record
		if err := json.Unmarshal(text, &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func decodeYAML(r io.Reader) ([]record.Record, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []record.Record{}, nil
		}
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return collection(doc)
}

// collection extracts the record list from a decoded document: either a
// top-level list or an object wrapping one under an envelope key.
func collection(doc any) ([]record.Record, error) {
	switch v := doc.(type) {
	case []any:
		return toRecords(v)
	case map[string]any:
		for _, key := range envelopeKeys {
			if list, ok := v[key].([]any); ok {
				return toRecords(list)
			}
		}
	}
	return nil, ErrNotACollection
}

func toRecords(list []any) ([]record.Record, error) {
	records := make([]record.Record, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %T", ErrNotACollection, i, item)
		}
		records = append(records, record.Record(m))
	}
	return records, nil
}
