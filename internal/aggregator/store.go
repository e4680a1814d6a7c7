package aggregator

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"

	"github.com/jonmartinstorm/profilsnusern/internal/models"
)

// WriteStateJSON skriver tilstanden som innrykket JSON.
func WriteStateJSON(w io.Writer, state models.State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		return fmt.Errorf("kunne ikke serialisere tilstand til JSON: %w", err)
	}
	return nil
}

// StoreStateJSON lagrer tilstanden som <dir>/<username>_snapshot.json og
// returnerer filstien.
func StoreStateJSON(dir string, state models.State) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("kunne ikke opprette katalog %s: %w", dir, err)
	}

	file := path.Join(dir, fmt.Sprintf("%s_snapshot.json", state.Username))
	f, err := os.Create(file)
	if err != nil {
		return "", fmt.Errorf("kunne ikke opprette fil %s: %w", file, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("Klarte ikke å lukke fil", "file", file, "error", cerr)
		}
	}()

	if err := WriteStateJSON(f, state); err != nil {
		return "", err
	}

	slog.Info("Lagret snapshot", "status", state.Status, "file", file)
	return file, nil
}
