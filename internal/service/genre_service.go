package service

import (
	"context"
	"errors"
	"fmt"

	"gamecatalog/backend/internal/apperror"
	"gamecatalog/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const genreResource = "Genre"

// CreateGenreInput holds the fields of a new genre.
type CreateGenreInput struct {
	Name string
}

// UpdateGenreInput holds the fields to overlay on an existing genre.
// Nil fields are left unchanged.
type UpdateGenreInput struct {
	Name *string
}

// GenreService owns Genre entities.
type GenreService struct {
	db *gorm.DB
}

func NewGenreService(db *gorm.DB) *GenreService {
	return &GenreService{db: db}
}

// List returns a page of genres in id order.
func (s *GenreService) List(ctx context.Context, p Pagination) ([]models.Genre, error) {
	var genres []models.Genre
	if err := p.apply(s.db.WithContext(ctx)).Order("id").Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return genres, nil
}

// Get returns the genre with id or a NotFoundError.
func (s *GenreService) Get(ctx context.Context, id uint) (*models.Genre, error) {
	return findGenre(s.db.WithContext(ctx), id)
}

func (s *GenreService) Create(ctx context.Context, in CreateGenreInput) (*models.Genre, error) {
	genre := models.Genre{Name: in.Name}
	if err := s.db.WithContext(ctx).Create(&genre).Error; err != nil {
		return nil, translateGenreWriteError(err, in.Name)
	}
	return &genre, nil
}

func (s *GenreService) Update(ctx context.Context, id uint, in UpdateGenreInput) (*models.Genre, error) {
	var genre *models.Genre
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if genre, err = findGenre(tx, id); err != nil {
			return err
		}
		if in.Name != nil {
			genre.Name = *in.Name
		}
		if err := tx.Omit(clause.Associations).Save(genre).Error; err != nil {
			return translateGenreWriteError(err, genre.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return genre, nil
}

// Remove deletes the genre and its game associations. Games are untouched.
func (s *GenreService) Remove(ctx context.Context, id uint) (*models.Genre, error) {
	var genre *models.Genre
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if genre, err = findGenre(tx, id); err != nil {
			return err
		}
		if err := tx.Select("Games").Delete(genre).Error; err != nil {
			return fmt.Errorf("delete genre %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return genre, nil
}

func findGenre(db *gorm.DB, id uint) (*models.Genre, error) {
	var genre models.Genre
	if err := db.First(&genre, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(genreResource, id)
		}
		return nil, fmt.Errorf("find genre %d: %w", id, err)
	}
	return &genre, nil
}

func translateGenreWriteError(err error, name string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &apperror.ConflictError{Message: fmt.Sprintf("Genre %q already exists", name)}
	}
	return fmt.Errorf("save genre: %w", err)
}
