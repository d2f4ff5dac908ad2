// Package transfer moves whole boards in and out of the application as JSON documents.
package transfer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/models"
)

// Export writes snapshot as indented JSON: {"columns": [...], "tasks": [...]}
func Export(w io.Writer, snapshot models.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot.Clone()); err != nil {
		return fmt.Errorf("encoding board: %w", err)
	}
	return nil
}

// Parse strips JSONC comments and trailing commas from data, then decodes and validates
// the board it describes.
func Parse(data []byte) (models.Snapshot, error) {
	stripped := bytes.TrimSpace(jsonc.ToJSON(data))
	if len(stripped) == 0 {
		return models.Snapshot{}, ErrEmptyInput
	}

	var doc models.Snapshot
	if err := json.Unmarshal(stripped, &doc); err != nil {
		return models.Snapshot{}, fmt.Errorf("parsing board: %w", err)
	}

	snap := doc.Clone()
	if err := board.Validate(snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("invalid board: %w", err)
	}
	return snap, nil
}

// Import reads a JSON or JSONC board from r
func Import(r io.Reader) (models.Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("reading board: %w", err)
	}
	return Parse(data)
}

// ReadFile reads and parses a board file from disk
func ReadFile(path string) (models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("reading %s: %w", path, err)
	}

	snap, err := Parse(data)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}
