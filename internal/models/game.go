package models

// Game represents a game in the catalog. It owns the many-to-many
// association to Genre through the game_genres join table.
type Game struct {
	ID          uint     `gorm:"primaryKey"`
	Name        string   `gorm:"size:255;not null;index"`
	Description string   `gorm:"not null"`
	Image       string   `gorm:"not null"`
	Genres      []*Genre `gorm:"many2many:game_genres;"`
}
