// Package dataset reads transaction files, writes mining results, and
// computes dataset summaries. Transactions cross this boundary as raw
// string tokens; encoding into the integer item space happens separately.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/seqmine/pkg/types"
)

// ReadTransactions loads a transaction dataset from path. The format is
// keyed on the file extension: .json expects a top-level list of lists,
// .csv expects one transaction per row. Unknown extensions return
// ErrUnknownFormat. Empty transactions are preserved.
func ReadTransactions(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return readJSON(f)
	case ".csv":
		return readCSV(f)
	default:
		return nil, fmt.Errorf("reading %s: %w", path, types.ErrUnknownFormat)
	}
}

func readJSON(r io.Reader) ([][]string, error) {
	var raw [][]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding JSON dataset: %w", err)
	}

	out := make([][]string, len(raw))
	for i, tx := range raw {
		items := make([]string, len(tx))
		for j, v := range tx {
			switch item := v.(type) {
			case string:
				items[j] = item
			case json.Number:
				items[j] = item.String()
			default:
				return nil, fmt.Errorf("transaction %d item %d: unsupported value %v", i, j, v)
			}
		}
		out[i] = items
	}
	return out, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	// Transactions have variable length.
	reader.FieldsPerRecord = -1

	var out [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV dataset: %w", err)
		}
		tx := make([]string, 0, len(record))
		for _, field := range record {
			field = strings.TrimSpace(field)
			if field != "" {
				tx = append(tx, field)
			}
		}
		out = append(out, tx)
	}
	return out, nil
}
