package preview

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/xfmoulet/qoi"
)

// LoadDir decodes every QOI sheet in dir, sorted by file name.
func LoadDir(dir string) ([]Sheet, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.qoi"))
	if err != nil {
		return nil, fmt.Errorf("listing sheets: %w", err)
	}
	slices.Sort(matches)

	sheets := make([]Sheet, 0, len(matches))
	for _, path := range matches {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening sheet: %w", err)
		}
		img, err := qoi.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		sheets = append(sheets, Sheet{Name: name, Image: img})
	}
	return sheets, nil
}
