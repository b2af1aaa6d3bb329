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

const gameResource = "Game"

// CreateGameInput holds the fields of a new game. Genres are genre names.
type CreateGameInput struct {
	Name        string
	Description string
	Image       string
	Genres      []string
}

// UpdateGameInput holds the fields to overlay on an existing game. Nil
// fields are left unchanged; a nil Genres leaves the associations as they
// are while an empty, non-nil Genres clears them.
type UpdateGameInput struct {
	Name        *string
	Description *string
	Image       *string
	Genres      []string
}

// GameService owns Game entities and reconciles genre names into Genre rows
// on every write.
type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{db: db}
}

// List returns a page of games in id order with their genres loaded.
func (s *GameService) List(ctx context.Context, p Pagination) ([]models.Game, error) {
	var games []models.Game
	err := p.apply(s.db.WithContext(ctx)).
		Preload("Genres", orderGenres).
		Order("id").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

// Get returns the game with id and its genres, or a NotFoundError.
func (s *GameService) Get(ctx context.Context, id uint) (*models.Game, error) {
	return findGame(s.db.WithContext(ctx), id, true)
}

// Create resolves every genre name, then writes the game and its
// associations in the same transaction. The returned genres keep request
// order.
func (s *GameService) Create(ctx context.Context, in CreateGameInput) (*models.Game, error) {
	var game *models.Game
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genres, err := resolveGenres(tx, in.Genres)
		if err != nil {
			return err
		}

		created := models.Game{
			Name:        in.Name,
			Description: in.Description,
			Image:       in.Image,
			Genres:      genres,
		}
		// Genres are already persisted; only the join rows are written.
		if err := tx.Omit("Genres.*").Create(&created).Error; err != nil {
			return fmt.Errorf("create game: %w", err)
		}
		game = &created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

// Update overlays the provided fields on the game identified by id. When
// genres are replaced the returned genres keep request order, otherwise they
// are loaded in id order.
func (s *GameService) Update(ctx context.Context, id uint, in UpdateGameInput) (*models.Game, error) {
	var game *models.Game
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if game, err = findGame(tx, id, false); err != nil {
			return err
		}

		if in.Name != nil {
			game.Name = *in.Name
		}
		if in.Description != nil {
			game.Description = *in.Description
		}
		if in.Image != nil {
			game.Image = *in.Image
		}
		if err := tx.Omit(clause.Associations).Save(game).Error; err != nil {
			return fmt.Errorf("update game %d: %w", id, err)
		}

		if in.Genres != nil {
			genres, err := resolveGenres(tx, in.Genres)
			if err != nil {
				return err
			}
			association := tx.Model(game).Association("Genres")
			if len(genres) == 0 {
				err = association.Clear()
			} else {
				err = association.Replace(genres)
			}
			if err != nil {
				return fmt.Errorf("replace genres of game %d: %w", id, err)
			}
			game.Genres = genres
			return nil
		}

		game, err = findGame(tx, id, true)
		return err
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

// Remove deletes the game and its genre associations. Genre rows are kept.
func (s *GameService) Remove(ctx context.Context, id uint) (*models.Game, error) {
	var game *models.Game
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if game, err = findGame(tx, id, true); err != nil {
			return err
		}
		if err := tx.Select("Genres").Delete(game).Error; err != nil {
			return fmt.Errorf("delete game %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

func findGame(db *gorm.DB, id uint, withGenres bool) (*models.Game, error) {
	if withGenres {
		db = db.Preload("Genres", orderGenres)
	}

	var game models.Game
	if err := db.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(gameResource, id)
		}
		return nil, fmt.Errorf("find game %d: %w", id, err)
	}
	return &game, nil
}

func orderGenres(db *gorm.DB) *gorm.DB {
	return db.Order("genres.id")
}

// resolveGenres maps genre names to persisted genres, creating the missing
// ones. Names match exactly; repeated names resolve once, first occurrence
// order is kept.
func resolveGenres(tx *gorm.DB, names []string) ([]*models.Genre, error) {
	genres := make([]*models.Genre, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		genre, err := preloadGenreByName(tx, name)
		if err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	return genres, nil
}

// preloadGenreByName returns the genre called name, inserting it first if
// absent. The insert ignores a concurrent writer's row and the re-read picks
// it up, so one name never yields two rows.
func preloadGenreByName(tx *gorm.DB, name string) (*models.Genre, error) {
	var genre models.Genre
	err := tx.Where("name = ?", name).First(&genre).Error
	if err == nil {
		return &genre, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find genre %q: %w", name, err)
	}

	insert := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	})
	if err := insert.Create(&models.Genre{Name: name}).Error; err != nil {
		return nil, fmt.Errorf("create genre %q: %w", name, err)
	}
	if err := tx.Where("name = ?", name).First(&genre).Error; err != nil {
		return nil, fmt.Errorf("reload genre %q: %w", name, err)
	}
	return &genre, nil
}
