package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// Store persists uploaded post images and returns the public URL path they
// will be served from.
type Store interface {
	Save(file *multipart.FileHeader) (string, error)
}

type DiskStore struct {
	dir     string
	urlBase string
}

// NewDiskStore writes files under dir and maps them to urlBase (e.g. "/uploads").
func NewDiskStore(dir, urlBase string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir, urlBase: urlBase}, nil
}

func (s *DiskStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	fileName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	dst, err := os.Create(filepath.Join(s.dir, fileName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return s.urlBase + "/" + fileName, nil
}

func (s *DiskStore) Dir() string { return s.dir }
