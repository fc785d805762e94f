// Package files maps a file name and an intent to an open file handle.
package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gwyn/texidor/internal/debug"
)

// Intent says whether a file is being started fresh or reopened.
type Intent int

const (
	// IntentNew creates the file, truncating any existing content.
	IntentNew Intent = iota
	// IntentExisting opens an existing file for reading.
	IntentExisting
)

func (i Intent) String() string {
	switch i {
	case IntentNew:
		return "new"
	case IntentExisting:
		return "existing"
	default:
		return fmt.Sprintf("Intent(%d)", int(i))
	}
}

// Resolver opens files relative to Dir.
type Resolver struct {
	// Dir is joined to relative names. Empty means the working directory.
	Dir string
}

// Path returns the location name resolves to.
func (r *Resolver) Path(name string) string {
	if r.Dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(r.Dir, name)
}

// Resolve returns a handle for name. Errors from the filesystem are returned
// unwrapped so callers can test them with errors.Is(err, fs.ErrNotExist).
// The caller owns the returned file and must close it.
func (r *Resolver) Resolve(name string, intent Intent) (*os.File, error) {
	path := r.Path(name)
	debug.Log("Resolver.Resolve", "path", path, "intent", intent.String())

	var (
		f   *os.File
		err error
	)
	switch intent {
	case IntentNew:
		f, err = os.Create(path)
	case IntentExisting:
		f, err = os.Open(path)
	default:
		err = fmt.Errorf("unknown intent: %s", intent)
	}
	if err != nil {
		debug.Error("Resolver.Resolve", err, "path", path)
		return nil, err
	}
	return f, nil
}
