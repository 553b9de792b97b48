package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Local writes uploads below Dir; Dir is served by the app at PublicPath.
type Local struct {
	Dir        string
	PublicPath string
}

func NewLocal(dir, publicPath string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{Dir: dir, PublicPath: "/" + strings.Trim(publicPath, "/")}, nil
}

func (l *Local) SaveImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	img, err := OpenImage(file)
	if err != nil {
		return "", err
	}
	defer img.File.Close()

	dir := filepath.Join(l.Dir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := img.Name + img.Extension
	out, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, img.File); err != nil {
		return "", err
	}
	return path.Join(l.PublicPath, folder, filename), nil
}
