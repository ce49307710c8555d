package models

// Favorite is a customer -> artisan bookmark. The composite unique index
// backs the duplicate check at the database level, so a racing second
// insert degrades to a unique violation instead of a second row.
type Favorite struct {
	BaseModel
	UserID    string `gorm:"not null;uniqueIndex:idx_favorites_user_artisan"`
	ArtisanID string `gorm:"not null;uniqueIndex:idx_favorites_user_artisan"`

	Artisan ArtisanProfile `gorm:"foreignKey:ArtisanID"`
}
