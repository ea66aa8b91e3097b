// Package jsonfile provides JSON file loaders for the company dataset, the
// SASB reference table and per-company keyword resources.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sustainlab/esgview"
)

// Compile-time interface verification.
var _ esgview.CompanyLoader = (*Loader)(nil)

// Loader loads the company dataset from a JSON array file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads a JSON file and returns all Company records in file order.
func (l *Loader) Load(path string) ([]esgview.Company, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var companies []esgview.Company
	if err := json.Unmarshal(data, &companies); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return companies, nil
}
