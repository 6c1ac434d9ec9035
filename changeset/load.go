package changeset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SnapshotExt marks a change list compiled with Encode.
const SnapshotExt = ".pb"

// Load reads a change list from path. Files ending in SnapshotExt are
// decoded as snapshots; anything else is parsed as a tab-separated list.
// Options apply to both forms.
func Load(path string, opts ...Option) (*Index, error) {
	if strings.EqualFold(filepath.Ext(path), SnapshotExt) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading snapshot: %w", err)
		}
		return Decode(data, opts...)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening change list: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f, opts...)
}

// WriteSnapshot encodes idx to path.
func WriteSnapshot(path string, idx *Index) error {
	data, err := Encode(idx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
