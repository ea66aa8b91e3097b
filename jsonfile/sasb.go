package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sustainlab/esgview"
)

// Keys of the non-industry columns in the SASB weight map file.
const (
	aspectKey = "面向"
	topicKey  = "議題"
)

// Compile-time interface verification.
var _ esgview.WeightSource = (*SASBSource)(nil)

// SASBSource loads the SASB weight table from a JSON file. The file is an
// array of objects holding the aspect and topic columns plus one integer
// column per industry.
type SASBSource struct {
	Path string
}

// NewSASBSource creates a SASBSource reading from path.
func NewSASBSource(path string) *SASBSource {
	return &SASBSource{Path: path}
}

// WeightTable reads and parses the reference table.
func (s *SASBSource) WeightTable(_ context.Context) (*esgview.WeightTable, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Path, err)
	}

	table := &esgview.WeightTable{}
	for i, row := range rows {
		entry := esgview.WeightEntry{Weights: make(map[string]int)}
		for key, value := range row {
			switch key {
			case aspectKey:
				entry.Aspect, _ = value.(string)
			case topicKey:
				entry.Topic, _ = value.(string)
			default:
				weight, ok := value.(float64)
				if !ok {
					return nil, fmt.Errorf("parse %s: row %d: weight %q is not a number", s.Path, i, key)
				}
				entry.Weights[key] = int(weight)
			}
		}
		if entry.Topic == "" {
			return nil, fmt.Errorf("parse %s: row %d: missing %s", s.Path, i, topicKey)
		}
		table.Entries = append(table.Entries, entry)
	}
	return table, nil
}
