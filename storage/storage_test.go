package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"restaurant_manager/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func TestLocalSaveImage(t *testing.T) {
	png, err := utils.GenerateQRCode("menu", 64)
	require.NoError(t, err)

	dir := t.TempDir()
	local, err := NewLocal(dir, "uploads/")
	require.NoError(t, err)

	// the extension comes from the content, not the client file name
	url, err := local.SaveImage(context.Background(), formFile(t, "dish.jpg", png), "menu")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/menu/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	saved, err := os.ReadFile(filepath.Join(dir, "menu", filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, png, saved)
}

func TestLocalRejectsNonImage(t *testing.T) {
	local, err := NewLocal(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = local.SaveImage(context.Background(), formFile(t, "evil.png", []byte("#!/bin/sh\necho hi\n")), "menu")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestOpenImageTooLarge(t *testing.T) {
	fh := formFile(t, "big.png", []byte("x"))
	fh.Size = MaxImageSize + 1
	_, err := OpenImage(fh)
	assert.ErrorIs(t, err, ErrTooLarge)
}
