package models

type JobPost struct {
	BaseModel
	OwnerID     string    `gorm:"not null;index"`
	Title       string    `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Location    string    `gorm:"not null"`
	Budget      float64
	Latitude    *float64
	Longitude   *float64
	Status      JobStatus `gorm:"type:varchar(20);default:'open'"`

	Owner        User             `gorm:"foreignKey:OwnerID"`
	Applications []JobApplication `gorm:"foreignKey:JobID"`
}

// JobApplication is an artisan -> job edge. Uniqueness per (artisan, job)
// is an application-level policy, enforced by the apply path.
type JobApplication struct {
	BaseModel
	JobID     string            `gorm:"not null;index"`
	ArtisanID string            `gorm:"not null;index"`
	Message   string            `gorm:"type:text"`
	Status    ApplicationStatus `gorm:"type:varchar(20);default:'pending'"`

	Job     JobPost `gorm:"foreignKey:JobID"`
	Artisan User    `gorm:"foreignKey:ArtisanID"`
}
