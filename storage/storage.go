package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Disk is the file storage abstraction the controllers talk to. Paths are
// relative (e.g. "volunteers/3f2a....jpg"); the database stores only these.
type Disk interface {
	Put(dir string, fh *multipart.FileHeader) (string, error)
	Delete(path string) error
	Exists(path string) bool
	URL(path string) string
}

// LocalDisk stores files under a public directory served by the router at
// /storage.
type LocalDisk struct {
	Root string
}

func NewLocalDisk(root string) *LocalDisk {
	return &LocalDisk{Root: root}
}

func (d *LocalDisk) Put(dir string, fh *multipart.FileHeader) (string, error) {
	name := uuid.New().String() + strings.ToLower(filepath.Ext(fh.Filename))
	relPath := filepath.ToSlash(filepath.Join(dir, name))

	absDir := filepath.Join(d.Root, dir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(d.Root, relPath))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return relPath, nil
}

func (d *LocalDisk) Delete(path string) error {
	return os.Remove(filepath.Join(d.Root, path))
}

func (d *LocalDisk) Exists(path string) bool {
	_, err := os.Stat(filepath.Join(d.Root, path))
	return err == nil
}

func (d *LocalDisk) URL(path string) string {
	return "/storage/" + path
}
