package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"romantic-api/core/constants"
	"romantic-api/modules/photo/dto"
	"romantic-api/modules/photo/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePhotoRepo struct {
	photos    []entity.Photo
	createErr error
}

func (f *fakePhotoRepo) List(ctx context.Context) ([]entity.Photo, error) { return f.photos, nil }

func (f *fakePhotoRepo) Find(ctx context.Context, id uuid.UUID) (*entity.Photo, error) {
	for i := range f.photos {
		if f.photos[i].ID == id {
			return &f.photos[i], nil
		}
	}
	return nil, nil
}

func (f *fakePhotoRepo) Create(ctx context.Context, photo *entity.Photo) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.photos = append(f.photos, *photo)
	return nil
}

func (f *fakePhotoRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func photoDir(uploadsDir string) string {
	return filepath.Join(uploadsDir, constants.UploadsPhotoSubdir)
}

func TestCreateStoresFileAndRow(t *testing.T) {
	uploadsDir := t.TempDir()
	repo := &fakePhotoRepo{}
	svc := NewPhotoService(repo, uploadsDir)

	photo, appErr := svc.Create(context.Background(),
		&dto.PhotoMetadata{Title: "Picnic en la playa"},
		strings.NewReader("not really a jpeg"), "IMG_0042.JPG")
	require.Nil(t, appErr)

	data, err := os.ReadFile(filepath.Join(photoDir(uploadsDir), photo.FileName))
	require.NoError(t, err)
	assert.Equal(t, "not really a jpeg", string(data))
	require.Len(t, repo.photos, 1)
}

func TestCreateRemovesFileWhenRowInsertFails(t *testing.T) {
	uploadsDir := t.TempDir()
	repo := &fakePhotoRepo{createErr: errors.New("database is locked")}
	svc := NewPhotoService(repo, uploadsDir)

	_, appErr := svc.Create(context.Background(),
		&dto.PhotoMetadata{Title: "Picnic en la playa"},
		strings.NewReader("not really a jpeg"), "IMG_0042.JPG")
	require.NotNil(t, appErr)

	files, err := os.ReadDir(photoDir(uploadsDir))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestNormalizeTakenAt(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2026-02-14T20:30:00Z", "2026-02-14T20:30:00Z"},
		{"2026-02-14T20:30", "2026-02-14T20:30:00Z"},
		{"2026-02-14", "2026-02-14T00:00:00Z"},
		{"  2026-02-14  ", "2026-02-14T00:00:00Z"},
		{"el día de San Valentín", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizeTakenAt(tc.in), "input %q", tc.in)
	}
}
