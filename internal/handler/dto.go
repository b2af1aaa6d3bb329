package handler

import "gamecatalog/backend/internal/models"

// region --- Genre DTOs ---

// CreateGenreRequest requires the name key; an empty string is accepted.
type CreateGenreRequest struct {
	Name *string `json:"name" binding:"required,max=255" example:"Action"`
}

type UpdateGenreRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255" example:"Adventure"`
}

type GenreResponse struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Action"`
}

func newGenreResponse(genre models.Genre) GenreResponse {
	return GenreResponse{
		ID:   genre.ID,
		Name: genre.Name,
	}
}

func newGenreResponses(genres []models.Genre) []GenreResponse {
	response := make([]GenreResponse, 0, len(genres))
	for _, genre := range genres {
		response = append(response, newGenreResponse(genre))
	}
	return response
}

// endregion

// region --- Game DTOs ---

// CreateGameRequest requires every key. Strings may be empty, genres may be [].
type CreateGameRequest struct {
	Name        *string  `json:"name" binding:"required,max=255" example:"The Legend of Zelda: Breath of the Wild"`
	Description *string  `json:"description" binding:"required" example:"An action-adventure game developed and published by Nintendo."`
	Image       *string  `json:"image" binding:"required" example:"https://upload.wikimedia.org/wikipedia/en/c/c6/The_Legend_of_Zelda_Breath_of_the_Wild.jpg"`
	Genres      []string `json:"genres" binding:"required,dive,max=255" example:"Action,Adventure"`
}

// UpdateGameRequest holds a partial update. Omitted (or null) fields are left
// unchanged; "genres": [] clears the game's genres.
type UpdateGameRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=255" example:"The Legend of Zelda: Tears of the Kingdom"`
	Description *string  `json:"description" example:"The sequel to Breath of the Wild."`
	Image       *string  `json:"image" example:"image.jpg"`
	Genres      []string `json:"genres" binding:"omitempty,dive,max=255" example:"Adventure"`
}

type GameResponse struct {
	ID          uint            `json:"id" example:"1"`
	Name        string          `json:"name" example:"The Legend of Zelda: Breath of the Wild"`
	Description string          `json:"description" example:"An action-adventure game developed and published by Nintendo."`
	Image       string          `json:"image" example:"image.jpg"`
	Genres      []GenreResponse `json:"genres"`
}

func newGameResponse(game models.Game) GameResponse {
	genres := make([]GenreResponse, 0, len(game.Genres))
	for _, genre := range game.Genres {
		if genre != nil {
			genres = append(genres, newGenreResponse(*genre))
		}
	}

	return GameResponse{
		ID:          game.ID,
		Name:        game.Name,
		Description: game.Description,
		Image:       game.Image,
		Genres:      genres,
	}
}

func newGameResponses(games []models.Game) []GameResponse {
	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}
	return response
}

// endregion
