package models

// Genre represents a game genre (e.g., "Action", "Adventure").
// Games is the inverse side of Game.Genres and is only populated when preloaded.
type Genre struct {
	ID    uint    `gorm:"primaryKey"`
	Name  string  `gorm:"size:255;uniqueIndex;not null"`
	Games []*Game `gorm:"many2many:game_genres;"`
}
