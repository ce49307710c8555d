package models

import "time"

type User struct {
	BaseModel
	Email         string   `gorm:"uniqueIndex;not null"`
	Name          string   `gorm:"not null"`
	PasswordHash  string   `gorm:"not null"`
	Role          UserRole `gorm:"type:varchar(20);not null"`
	Location      string
	PhoneNumber   string
	ProfilePic    string
	ResetToken    string
	ResetTokenExp *time.Time

	// Relations
	ArtisanProfile *ArtisanProfile `gorm:"foreignKey:UserID"`
	RefreshTokens  []RefreshToken  `gorm:"foreignKey:UserID"`
}

// IsArtisan reports whether the account carries the service-provider role.
func (u *User) IsArtisan() bool {
	return u.Role == UserRoleArtisan
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
