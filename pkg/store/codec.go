package store

import (
	stderrors "errors"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/openfield/dealflow/pkg/errors"
)

// Load reads and decodes a workbook. A missing file yields an empty
// workbook so first runs bootstrap the store. Permission failures are
// classified as lock contention: the usual cause is a sync client or
// another user holding the file, which clears on retry.
func Load(path string) (*Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return NewWorkbook(path), nil
		}
		if stderrors.Is(err, fs.ErrPermission) {
			return nil, errors.NewLockError(path, err)
		}
		return nil, errors.WrapIO("read", path, err)
	}
	return Unmarshal(data, path)
}

// Unmarshal decodes workbook bytes.
func Unmarshal(data []byte, path string) (*Workbook, error) {
	w := NewWorkbook(path)
	if len(data) == 0 {
		return w, nil
	}
	if err := yaml.Unmarshal(data, w); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return w, nil
}

// Marshal encodes the workbook for writing.
func Marshal(w *Workbook) ([]byte, error) {
	data, err := yaml.Marshal(w)
	if err != nil {
		return nil, errors.WrapParse("yaml", w.Path, err)
	}
	return data, nil
}
