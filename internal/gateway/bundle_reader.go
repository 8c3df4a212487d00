package gateway

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/derak-isaack/KenyaRe-Hackathon/internal/domain"
)

// BundleReader loads claim input bundles from JSON files produced by the
// extraction pipeline.
type BundleReader struct{}

// NewBundleReader creates a new reader instance.
func NewBundleReader() *BundleReader {
	return &BundleReader{}
}

// ReadBundle reads and decodes a single claim input bundle.
func (r *BundleReader) ReadBundle(path string) (*domain.AnalysisInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle file %s: %w", path, err)
	}

	var input domain.AnalysisInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to decode bundle file %s: %w", path, err)
	}
	return &input, nil
}

// ReadBundles reads multiple bundle files in order.
func (r *BundleReader) ReadBundles(paths []string) ([]domain.AnalysisInput, error) {
	inputs := make([]domain.AnalysisInput, 0, len(paths))
	for _, path := range paths {
		input, err := r.ReadBundle(path)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, *input)
	}
	return inputs, nil
}
