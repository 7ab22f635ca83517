package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/seqmine/internal/encode"
	"github.com/mesh-intelligence/seqmine/pkg/types"
)

// Output formats accepted by WriteLevels.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatText = "text"
)

// decodedPattern is one pattern rendered back into tokens for output.
type decodedPattern struct {
	Pattern []string `json:"pattern"`
	Support int      `json:"support"`
}

// decodedLevel groups decoded patterns by k-sequence level.
type decodedLevel struct {
	Level    int              `json:"level"`
	Patterns []decodedPattern `json:"patterns"`
}

// WriteLevels decodes the mined levels through the mapper and writes them
// to w in the given format. Returns ErrUnknownFormat for formats other
// than json, csv, or text.
func WriteLevels(w io.Writer, levels []types.Level, mapper *encode.Mapper, format string) error {
	decoded, err := decodeLevels(levels, mapper)
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(decoded)
	case FormatCSV:
		return writeCSV(w, decoded)
	case FormatText:
		return writeText(w, decoded)
	default:
		return fmt.Errorf("writing results: %w", types.ErrUnknownFormat)
	}
}

// Flatten decodes the mined levels into flat stored-pattern rows for the
// run store, preserving level and in-level order.
func Flatten(levels []types.Level, mapper *encode.Mapper) ([]types.StoredPattern, error) {
	var out []types.StoredPattern
	for i, level := range levels {
		for j, p := range level {
			tokens, err := mapper.DecodePattern(p)
			if err != nil {
				return nil, fmt.Errorf("decoding level %d pattern %d: %w", i+1, j, err)
			}
			out = append(out, types.StoredPattern{Level: i + 1, Pattern: tokens, Support: p.Support})
		}
	}
	return out, nil
}

func decodeLevels(levels []types.Level, mapper *encode.Mapper) ([]decodedLevel, error) {
	out := make([]decodedLevel, len(levels))
	for i, level := range levels {
		patterns := make([]decodedPattern, len(level))
		for j, p := range level {
			tokens, err := mapper.DecodePattern(p)
			if err != nil {
				return nil, fmt.Errorf("decoding level %d pattern %d: %w", i+1, j, err)
			}
			patterns[j] = decodedPattern{Pattern: tokens, Support: p.Support}
		}
		out[i] = decodedLevel{Level: i + 1, Patterns: patterns}
	}
	return out, nil
}

func writeCSV(w io.Writer, decoded []decodedLevel) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"level", "pattern", "support"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, level := range decoded {
		for _, p := range level.Patterns {
			record := []string{
				strconv.Itoa(level.Level),
				strings.Join(p.Pattern, " "),
				strconv.Itoa(p.Support),
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("writing CSV record: %w", err)
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeText(w io.Writer, decoded []decodedLevel) error {
	for _, level := range decoded {
		if _, err := fmt.Fprintf(w, "Level %d (%d patterns)\n", level.Level, len(level.Patterns)); err != nil {
			return err
		}
		for _, p := range level.Patterns {
			if _, err := fmt.Fprintf(w, "  %s  support=%d\n", strings.Join(p.Pattern, " "), p.Support); err != nil {
				return err
			}
		}
	}
	return nil
}
