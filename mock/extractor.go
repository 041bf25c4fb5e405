package mock

import "github.com/wayharvest/wayharvest"

var _ wayharvest.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wayharvest.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*wayharvest.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*wayharvest.ExtractResult, error) {
	return e.ExtractFn(html)
}
