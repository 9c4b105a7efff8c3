// Package local provides a filesystem-backed gryf.Storage. Datasets are
// written lz4-compressed at rest.
package local

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/go-gryf/gryf"
	"github.com/pierrec/lz4"
)

// Storage stores each location as one compressed file under a root directory
type Storage struct {
	dir string
}

// NewStorage returns a Storage rooted at the given directory
func NewStorage(dir string) *Storage {
	return &Storage{dir: dir}
}

func (ls *Storage) path(loc gryf.Location) string {
	return filepath.Join(ls.dir, string(loc))
}

// Write compresses and stores data at the given location
func (ls *Storage) Write(loc gryf.Location, data []byte) error {
	f, err := os.Create(ls.path(loc))
	if err != nil {
		return err
	}
	w := lz4.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := w.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Read decompresses and returns the data at the given location
func (ls *Storage) Read(loc gryf.Location) ([]byte, error) {
	f, err := os.Open(ls.path(loc))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ioutil.ReadAll(lz4.NewReader(f))
}

// Exists returns true iff data is present at the given location
func (ls *Storage) Exists(loc gryf.Location) (bool, error) {
	_, err := os.Stat(ls.path(loc))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the data at the given location
func (ls *Storage) Delete(loc gryf.Location, recursive bool) error {
	if recursive {
		return os.RemoveAll(ls.path(loc))
	}
	return os.Remove(ls.path(loc))
}
