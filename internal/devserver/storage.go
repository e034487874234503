package devserver

import (
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/mediavault/internal/filex"
)

type StorageProvider interface {
	SaveFile(reader io.Reader, filename string) (string, int64, error)
	GetFile(path string) (io.ReadCloser, error)
}

// LocalStorage keeps uploaded blobs in a flat directory. Filenames are
// prefixed by the caller with the item id, so collisions cannot happen.
type LocalStorage struct {
	BaseDir string
}

func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	dir, err := filex.EnsureSubDir(baseDir)
	if err != nil {
		return nil, err
	}
	return &LocalStorage{BaseDir: dir}, nil
}

func (s *LocalStorage) SaveFile(reader io.Reader, filename string) (string, int64, error) {
	path := filepath.Join(s.BaseDir, filename)

	out, err := os.Create(path)
	if err != nil {
		return "", 0, err
	}
	defer out.Close()

	written, err := io.Copy(out, reader)
	if err != nil {
		return "", 0, err
	}

	return path, written, nil
}

func (s *LocalStorage) GetFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}
