package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/wzshiming/easydata/internal/config"
)

var (
	// ErrEmptyInput is returned when the input holds no document.
	ErrEmptyInput = errors.New("input is empty")
	// ErrUnknownFormat is returned for a format that has no decoder.
	ErrUnknownFormat = errors.New("unknown format")
)

var extFormats = map[string]string{
	".json": config.FormatJSON,
	".yaml": config.FormatYAML,
	".yml":  config.FormatYAML,
	".toml": config.FormatTOML,
}

// DetectFormat resolves FormatAuto from the file name, falling back to JSON.
func DetectFormat(format, name string) string {
	if format != "" && format != config.FormatAuto {
		return format
	}
	if f, ok := extFormats[strings.ToLower(filepath.Ext(name))]; ok {
		return f
	}
	return config.FormatJSON
}

// Decode reads a single document in the given format.
// JSON numbers become int64 when integral and float64 otherwise.
// protojson documents are returned as *structpb.Value.
func Decode(r io.Reader, format string) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}
	switch format {
	case config.FormatJSON, config.FormatAuto, "":
		return decodeJSON(data)
	case config.FormatYAML:
		var out any
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return out, nil
	case config.FormatTOML:
		var out map[string]any
		if err := toml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		return out, nil
	case config.FormatProtoJSON:
		out := &structpb.Value{}
		if err := protojson.Unmarshal(data, out); err != nil {
			return nil, fmt.Errorf("decode protojson: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

func decodeJSON(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var out any
	if err := decoder.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if decoder.More() {
		return nil, errors.New("decode json: multiple values found at the root")
	}
	return normalizeNumbers(out)
}

func normalizeNumbers(val any) (any, error) {
	var err error
	switch v := val.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("decode json: number %s: %w", v, err)
		}
		return f, nil
	case []any:
		for i := range v {
			if v[i], err = normalizeNumbers(v[i]); err != nil {
				return nil, err
			}
		}
	case map[string]any:
		for k := range v {
			if v[k], err = normalizeNumbers(v[k]); err != nil {
				return nil, err
			}
		}
	}
	return val, nil
}
