package mock

import (
	"github.com/sustainlab/esgview"
)

// Compile-time interface verification.
var _ esgview.CompanyLoader = (*CompanyLoader)(nil)

// CompanyLoader is a mock implementation of esgview.CompanyLoader.
type CompanyLoader struct {
	LoadFn func(path string) ([]esgview.Company, error)
}

func (l *CompanyLoader) Load(path string) ([]esgview.Company, error) {
	return l.LoadFn(path)
}
