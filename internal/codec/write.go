package codec

import (
	"fmt"

	"github.com/google/renameio/v2"
)

// WriteFile publishes data at path atomically. The bytes are written to a
// temporary file in the same directory and renamed into place, so a failed
// write never leaves a truncated file at path.
func WriteFile(path string, data []byte) error {
	if err := renameio.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrEncode, path, err)
	}
	return nil
}
