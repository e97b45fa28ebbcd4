package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carstock/carstock-go/internal/model"
)

// newTestSQL opens a throwaway SQLite file with the schema applied.
func newTestSQL(t *testing.T) *sql.DB {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, EnsureSchema(context.Background(), db))
	return db
}

func TestCarRepository_CreateAndGet(t *testing.T) {
	db := newTestSQL(t)
	repo := NewCarRepository(db)
	ctx := context.Background()

	car := model.CarModel{Manufacturer: "Acme", Model: "X1", Year: 2020, Price: 19999.99}
	require.NoError(t, repo.Create(ctx, &car))
	require.NotZero(t, car.ID)

	got, err := repo.GetByID(ctx, car.ID)
	require.NoError(t, err)
	require.Equal(t, car, *got)
	require.Empty(t, got.ImagePath)
}

func TestCarRepository_GetMissing(t *testing.T) {
	db := newTestSQL(t)
	repo := NewCarRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	require.ErrorIs(t, err, ErrCarNotFound)
}

func TestCarRepository_Update(t *testing.T) {
	db := newTestSQL(t)
	repo := NewCarRepository(db)
	ctx := context.Background()

	car := model.CarModel{Manufacturer: "Acme", Model: "X1", Year: 2020, Price: 19999.99}
	require.NoError(t, repo.Create(ctx, &car))

	updated := model.CarModel{Manufacturer: "Acme", Model: "X2", Year: 2021, Price: 24999.99}
	require.NoError(t, repo.Update(ctx, car.ID, &updated))

	got, err := repo.GetByID(ctx, car.ID)
	require.NoError(t, err)
	require.Equal(t, "X2", got.Model)
	require.Equal(t, 2021, got.Year)
	require.Equal(t, 24999.99, got.Price)
}

func TestCarRepository_UpdateMissing(t *testing.T) {
	db := newTestSQL(t)
	repo := NewCarRepository(db)
	ctx := context.Background()

	car := model.CarModel{Manufacturer: "Acme", Model: "X1", Year: 2020, Price: 1.0}
	err := repo.Update(ctx, 999, &car)
	require.ErrorIs(t, err, ErrCarNotFound)

	// No row must have appeared as a side effect.
	cars, err := repo.List(ctx, 0, "", false)
	require.NoError(t, err)
	require.Empty(t, cars)
}

func TestCarRepository_Delete(t *testing.T) {
	db := newTestSQL(t)
	repo := NewCarRepository(db)
	ctx := context.Background()

	require.ErrorIs(t, repo.Delete(ctx, 999), ErrCarNotFound)

	car := model.CarModel{Manufacturer: "Acme", Model: "X1", Year: 2020, Price: 1.0}
	require.NoError(t, repo.Create(ctx, &car))
	require.NoError(t, repo.Delete(ctx, car.ID))

	_, err := repo.GetByID(ctx, car.ID)
	require.ErrorIs(t, err, ErrCarNotFound)
}

func TestCarRepository_ListLimitAndSort(t *testing.T) {
	db := newTestSQL(t)
	repo := NewCarRepository(db)
	ctx := context.Background()

	prices := []float64{100, 500, 300, 200, 400}
	for i, p := range prices {
		car := model.CarModel{Manufacturer: "M", Model: string(rune('a' + i)), Year: 2000 + i, Price: p}
		require.NoError(t, repo.Create(ctx, &car))
	}

	cars, err := repo.List(ctx, 2, "", false)
	require.NoError(t, err)
	require.Len(t, cars, 2)

	cars, err = repo.List(ctx, 100, "price", true)
	require.NoError(t, err)
	require.Len(t, cars, 5)
	for i := 1; i < len(cars); i++ {
		require.LessOrEqual(t, cars[i].Price, cars[i-1].Price)
	}

	// Zero limit falls back to the default of 10.
	cars, err = repo.List(ctx, 0, "id", false)
	require.NoError(t, err)
	require.Len(t, cars, 5)
}

func TestCarRepository_ListRejectsUnknownSortColumn(t *testing.T) {
	db := newTestSQL(t)
	repo := NewCarRepository(db)

	_, err := repo.List(context.Background(), 10, "price; DROP TABLE car_models", false)
	require.ErrorIs(t, err, ErrBadSortColumn)

	_, err = repo.List(context.Background(), 10, "image_path", false)
	require.ErrorIs(t, err, ErrBadSortColumn)
}

func TestCarRepository_ImagePath(t *testing.T) {
	db := newTestSQL(t)
	repo := NewCarRepository(db)
	ctx := context.Background()

	car := model.CarModel{Manufacturer: "Acme", Model: "X1", Year: 2020, Price: 1.0}
	require.NoError(t, repo.Create(ctx, &car))

	require.ErrorIs(t, repo.SetImagePath(ctx, 999, "x.png"), ErrCarNotFound)

	require.NoError(t, repo.SetImagePath(ctx, car.ID, "uploaded_images/abc.png"))
	got, err := repo.GetByID(ctx, car.ID)
	require.NoError(t, err)
	require.Equal(t, "uploaded_images/abc.png", got.ImagePath)

	require.NoError(t, repo.ClearImagePath(ctx, car.ID))
	got, err = repo.GetByID(ctx, car.ID)
	require.NoError(t, err)
	require.Empty(t, got.ImagePath)

	// Clearing a missing row stays a no-op.
	require.NoError(t, repo.ClearImagePath(ctx, 999))
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	db := newTestSQL(t)
	repo := NewCarRepository(db)
	ctx := context.Background()

	car := model.CarModel{Manufacturer: "Acme", Model: "X1", Year: 2020, Price: 1.0}
	require.NoError(t, repo.Create(ctx, &car))

	// Running schema setup again must not fail or destroy rows.
	require.NoError(t, EnsureSchema(ctx, db))

	got, err := repo.GetByID(ctx, car.ID)
	require.NoError(t, err)
	require.Equal(t, car.ID, got.ID)
}
