package models

type Review struct {
	BaseModel
	CustomerID string `gorm:"not null;index"`
	ArtisanID  string `gorm:"not null;index"`
	Rating     int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment    string `gorm:"type:text;not null"`

	Customer User           `gorm:"foreignKey:CustomerID"`
	Artisan  ArtisanProfile `gorm:"foreignKey:ArtisanID"`
}
