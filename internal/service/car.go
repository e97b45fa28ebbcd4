package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/carstock/carstock-go/internal/model"
	"github.com/carstock/carstock-go/internal/repository"
	"github.com/carstock/carstock-go/internal/storage"
)

var (
	ErrCarNotFound = errors.New("car model not found")
	ErrInvalidSort = errors.New("sort_by must be one of: id, manufacturer, model, year, price")
)

// CarService handles car model business logic, including image attachments.
type CarService struct {
	repo   *repository.CarRepository
	images *storage.ImageStore
}

// NewCarService creates a new CarService.
func NewCarService(repo *repository.CarRepository, images *storage.ImageStore) *CarService {
	return &CarService{repo: repo, images: images}
}

// List returns up to limit car models, optionally sorted.
func (s *CarService) List(ctx context.Context, limit int, sortBy string, descending bool) ([]model.CarModel, error) {
	cars, err := s.repo.List(ctx, limit, sortBy, descending)
	if err != nil {
		if errors.Is(err, repository.ErrBadSortColumn) {
			return nil, ErrInvalidSort
		}
		return nil, err
	}
	return cars, nil
}

// Create inserts a new car model and returns it with the assigned ID.
func (s *CarService) Create(ctx context.Context, req model.CarModelRequest) (model.CarModel, error) {
	car := model.CarModel{
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		Year:         req.Year,
		Price:        req.Price,
	}

	if err := s.repo.Create(ctx, &car); err != nil {
		return model.CarModel{}, err
	}

	return car, nil
}

// Get retrieves a single car model.
func (s *CarService) Get(ctx context.Context, id int64) (model.CarModel, error) {
	car, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return model.CarModel{}, ErrCarNotFound
		}
		return model.CarModel{}, err
	}
	return *car, nil
}

// Update replaces the four mutable fields and returns the updated row.
func (s *CarService) Update(ctx context.Context, id int64, req model.CarModelRequest) (model.CarModel, error) {
	car := model.CarModel{
		ID:           id,
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		Year:         req.Year,
		Price:        req.Price,
	}

	if err := s.repo.Update(ctx, id, &car); err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return model.CarModel{}, ErrCarNotFound
		}
		return model.CarModel{}, err
	}

	return car, nil
}

// Delete removes the row and, when an image is attached, its stored file.
// A failed file removal is logged, not returned: the row is already gone.
func (s *CarService) Delete(ctx context.Context, id int64) error {
	car, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return ErrCarNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return ErrCarNotFound
		}
		return err
	}

	if car.ImagePath != "" {
		if err := s.images.Remove(car.ImagePath); err != nil {
			slog.Warn("could not remove image file for deleted car model",
				"car_model_id", id, "path", car.ImagePath, "error", err)
		}
	}

	return nil
}

// AttachImage stores an uploaded image for an existing car model and records
// the stored path on the row. The row must exist before anything is written
// to disk, so a bad ID never leaves a stray file behind.
func (s *CarService) AttachImage(ctx context.Context, id int64, file io.Reader, filename string) (string, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return "", ErrCarNotFound
		}
		return "", err
	}

	path, err := s.images.Save(file, filename)
	if err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}

	if err := s.repo.SetImagePath(ctx, id, path); err != nil {
		// The row vanished between the existence check and the update.
		if removeErr := s.images.Remove(path); removeErr != nil {
			slog.Warn("could not remove orphaned image file", "path", path, "error", removeErr)
		}
		if errors.Is(err, repository.ErrCarNotFound) {
			return "", ErrCarNotFound
		}
		return "", err
	}

	return path, nil
}

// DetachImage clears the image reference on the row. The underlying file is
// kept; only delete of the whole car model removes files.
func (s *CarService) DetachImage(ctx context.Context, id int64) error {
	return s.repo.ClearImagePath(ctx, id)
}
