package collector

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"GasWhisperer/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// historyFile is the on-disk shape: {"recent": [{"timestamp": "...", "gas_gwei": 12.3}, ...]}.
type historyFile struct {
	Recent []model.RecentPoint `json:"recent"`
}

// FileSource reads history from a local JSON file on every call.
type FileSource struct {
	Path string
}

// NewFileSource creates a source backed by path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) Name() string { return "file:" + f.Path }

// Recent returns the last limit points of the file, in file order. limit <= 0 means all.
func (f *FileSource) Recent(limit int) ([]model.RecentPoint, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	var h historyFile
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("decode history %s: %w", f.Path, err)
	}
	return lastN(h.Recent, limit), nil
}

func lastN(points []model.RecentPoint, limit int) []model.RecentPoint {
	if limit > 0 && len(points) > limit {
		points = points[len(points)-limit:]
	}
	return points
}
