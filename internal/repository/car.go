package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/carstock/carstock-go/internal/model"
)

var (
	ErrCarNotFound   = errors.New("car model not found")
	ErrBadSortColumn = errors.New("unsupported sort column")
)

// DefaultListLimit bounds list results when the caller passes no limit.
const DefaultListLimit = 10

// sortColumns is the allow-list for ORDER BY. Anything outside it is rejected
// before the column name reaches SQL.
var sortColumns = map[string]bool{
	"id":           true,
	"manufacturer": true,
	"model":        true,
	"year":         true,
	"price":        true,
}

// CarRepository handles resource store persistence.
type CarRepository struct {
	db *sql.DB
}

// NewCarRepository creates a new CarRepository.
func NewCarRepository(db *sql.DB) *CarRepository {
	return &CarRepository{db: db}
}

// List retrieves up to limit car models, optionally ordered by sortBy.
// An empty sortBy keeps storage order; an unknown column is ErrBadSortColumn.
func (r *CarRepository) List(ctx context.Context, limit int, sortBy string, descending bool) ([]model.CarModel, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	query := `SELECT id, manufacturer, model, year, price, COALESCE(image_path, '') FROM car_models`
	if sortBy != "" {
		if !sortColumns[sortBy] {
			return nil, ErrBadSortColumn
		}
		dir := "ASC"
		if descending {
			dir = "DESC"
		}
		query += " ORDER BY " + sortBy + " " + dir
	}
	query += " LIMIT ?"

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []model.CarModel
	for rows.Next() {
		var c model.CarModel
		if err := rows.Scan(&c.ID, &c.Manufacturer, &c.Model, &c.Year, &c.Price, &c.ImagePath); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}

	return cars, rows.Err()
}

// Create inserts a new car model and sets the generated ID on the struct.
// image_path starts unset.
func (r *CarRepository) Create(ctx context.Context, car *model.CarModel) error {
	query := `INSERT INTO car_models (manufacturer, model, year, price) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, car.Manufacturer, car.Model, car.Year, car.Price)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	car.ID = id
	return nil
}

// GetByID retrieves a car model by its ID.
func (r *CarRepository) GetByID(ctx context.Context, id int64) (*model.CarModel, error) {
	query := `SELECT id, manufacturer, model, year, price, COALESCE(image_path, '')
		FROM car_models WHERE id = ?`

	car := &model.CarModel{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&car.ID, &car.Manufacturer, &car.Model, &car.Year, &car.Price, &car.ImagePath,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}

	return car, nil
}

// Update replaces the four mutable fields of an existing row.
func (r *CarRepository) Update(ctx context.Context, id int64, car *model.CarModel) error {
	query := `UPDATE car_models SET manufacturer = ?, model = ?, year = ?, price = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, car.Manufacturer, car.Model, car.Year, car.Price, id)
	if err != nil {
		return err
	}

	return requireRowMatched(result)
}

// Delete removes a car model row.
func (r *CarRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM car_models WHERE id = ?`, id)
	if err != nil {
		return err
	}

	return requireRowMatched(result)
}

// SetImagePath records the stored image path on a row.
func (r *CarRepository) SetImagePath(ctx context.Context, id int64, path string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE car_models SET image_path = ? WHERE id = ?`, path, id)
	if err != nil {
		return err
	}

	return requireRowMatched(result)
}

// ClearImagePath sets image_path back to NULL. Clearing a nonexistent row is a
// no-op, matching the reference-only delete semantics of the image endpoint.
func (r *CarRepository) ClearImagePath(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE car_models SET image_path = NULL WHERE id = ?`, id)
	return err
}

func requireRowMatched(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCarNotFound
	}
	return nil
}
