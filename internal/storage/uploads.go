package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store writes uploaded images to a directory on disk and hands back the
// URL path they are served from. Filenames are generated, never taken from
// the upload.
type Store struct {
	Dir       string
	URLPrefix string // e.g. "/uploads"
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{Dir: dir, URLPrefix: "/uploads"}, nil
}

// Save stores the uploaded file under a generated <unix-ms>-<uuid><ext>
// name and returns its public URL path.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return s.URLPrefix + "/" + name, nil
}

// Remove deletes the file behind a URL path previously returned by Save.
// Paths outside the store's prefix are rejected so a crafted image_url can
// never reach elsewhere on disk.
func (s *Store) Remove(urlPath string) error {
	if !strings.HasPrefix(urlPath, s.URLPrefix+"/") {
		return errors.New("not an upload path")
	}
	name := filepath.Base(strings.TrimPrefix(urlPath, s.URLPrefix+"/"))
	return os.Remove(filepath.Join(s.Dir, name))
}
