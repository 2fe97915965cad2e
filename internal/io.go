package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// MarshalFile writes o as indented JSON to a new file at path, replacing any
// existing file.
func MarshalFile(path string, o any) (outErr error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	defer Close(path, f, &outErr)

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	err = enc.Encode(o)
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	return nil
}

// Close closes c and joins any error into outErr. os.ErrClosed is ignored so
// that a resource can be closed explicitly as well as deferred.
func Close(name string, c io.Closer, outErr *error) {
	err := c.Close()
	if err != nil && !errors.Is(err, os.ErrClosed) {
		*outErr = errors.Join(*outErr, fmt.Errorf("close %s: %w", name, err))
	}
}
