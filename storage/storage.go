package storage

import (
	"context"
	"errors"
	"io"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const MaxImageSize = 5 << 20

var (
	ErrUnsupportedType = errors.New("only jpeg, png, gif and webp images are accepted")
	ErrTooLarge        = errors.New("image exceeds 5 MiB")
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// Storage persists an uploaded image and returns the URL clients should use for it.
type Storage interface {
	SaveImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
}

// Image is an opened upload that passed the content checks.
type Image struct {
	File      multipart.File
	Name      string
	Extension string
	MIME      string
}

// OpenImage opens file, sniffs its content type and rewinds it. The caller closes
// img.File.
func OpenImage(file *multipart.FileHeader) (*Image, error) {
	if file.Size > MaxImageSize {
		return nil, ErrTooLarge
	}
	f, err := file.Open()
	if err != nil {
		return nil, err
	}

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	if !mimetype.EqualsAny(mtype.String(), allowedImageTypes...) {
		f.Close()
		return nil, ErrUnsupportedType
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}

	return &Image{
		File:      f,
		Name:      uuid.NewString(),
		Extension: mtype.Extension(),
		MIME:      mtype.String(),
	}, nil
}
