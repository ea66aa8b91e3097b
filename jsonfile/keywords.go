package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sustainlab/esgview"
)

// Compile-time interface verification.
var _ esgview.KeywordSource = (*KeywordDir)(nil)

// KeywordDir serves per-company keyword resources from a directory of
// {stockID}_{year}_wc.json files.
type KeywordDir struct {
	Dir string
}

// NewKeywordDir creates a KeywordDir reading from dir.
func NewKeywordDir(dir string) *KeywordDir {
	return &KeywordDir{Dir: dir}
}

// Keywords loads the keyword resource for one company report. A missing file
// is esgview.ErrNotFound.
func (k *KeywordDir) Keywords(_ context.Context, stockID string, year int) ([]esgview.Keyword, error) {
	path := filepath.Join(k.Dir, fmt.Sprintf("%s_%d_wc.json", stockID, year))

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s_%d: %w", stockID, year, esgview.ErrNotFound)
		}
		return nil, err
	}

	var words []esgview.Keyword
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return words, nil
}
