package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carstock/carstock-go/internal/model"
	"github.com/carstock/carstock-go/internal/repository"
	"github.com/carstock/carstock-go/internal/storage"
)

func newTestCarService(t *testing.T) (*CarService, string) {
	t.Helper()

	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, repository.EnsureSchema(context.Background(), db))

	uploadDir := t.TempDir()
	images, err := storage.NewImageStore(uploadDir)
	require.NoError(t, err)

	return NewCarService(repository.NewCarRepository(db), images), uploadDir
}

func createCar(t *testing.T, svc *CarService) model.CarModel {
	t.Helper()

	car, err := svc.Create(context.Background(), model.CarModelRequest{
		Manufacturer: "Acme", Model: "X1", Year: 2020, Price: 19999.99,
	})
	require.NoError(t, err)
	return car
}

func TestCarServiceCreateGet(t *testing.T) {
	svc, _ := newTestCarService(t)
	car := createCar(t, svc)

	got, err := svc.Get(context.Background(), car.ID)
	require.NoError(t, err)
	require.Equal(t, car, got)
}

func TestCarServiceListInvalidSort(t *testing.T) {
	svc, _ := newTestCarService(t)

	_, err := svc.List(context.Background(), 10, "bogus", false)
	require.ErrorIs(t, err, ErrInvalidSort)
}

func TestCarServiceAttachImage(t *testing.T) {
	svc, _ := newTestCarService(t)
	car := createCar(t, svc)
	ctx := context.Background()

	path, err := svc.AttachImage(ctx, car.ID, strings.NewReader("png bytes"), "photo.png")
	require.NoError(t, err)
	require.NotContains(t, path, "photo")
	require.FileExists(t, path)

	got, err := svc.Get(ctx, car.ID)
	require.NoError(t, err)
	require.Equal(t, path, got.ImagePath)
}

func TestCarServiceAttachImageMissingCar(t *testing.T) {
	svc, uploadDir := newTestCarService(t)

	_, err := svc.AttachImage(context.Background(), 999, strings.NewReader("x"), "photo.png")
	require.ErrorIs(t, err, ErrCarNotFound)

	// Nothing may have been written to disk for a bad ID.
	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestCarServiceDetachImageKeepsFile(t *testing.T) {
	svc, _ := newTestCarService(t)
	car := createCar(t, svc)
	ctx := context.Background()

	path, err := svc.AttachImage(ctx, car.ID, strings.NewReader("x"), "a.png")
	require.NoError(t, err)

	require.NoError(t, svc.DetachImage(ctx, car.ID))

	got, err := svc.Get(ctx, car.ID)
	require.NoError(t, err)
	require.Empty(t, got.ImagePath)
	require.FileExists(t, path)
}

func TestCarServiceDeleteRemovesImageFile(t *testing.T) {
	svc, _ := newTestCarService(t)
	car := createCar(t, svc)
	ctx := context.Background()

	path, err := svc.AttachImage(ctx, car.ID, strings.NewReader("x"), "a.png")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, car.ID))

	_, err = svc.Get(ctx, car.ID)
	require.ErrorIs(t, err, ErrCarNotFound)
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestCarServiceDeleteMissing(t *testing.T) {
	svc, _ := newTestCarService(t)

	require.ErrorIs(t, svc.Delete(context.Background(), 999), ErrCarNotFound)
}

func TestCarServiceUpdateMissing(t *testing.T) {
	svc, _ := newTestCarService(t)

	_, err := svc.Update(context.Background(), 999, model.CarModelRequest{
		Manufacturer: "Acme", Model: "X1", Year: 2020, Price: 1,
	})
	require.ErrorIs(t, err, ErrCarNotFound)
}
