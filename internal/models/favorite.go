package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite is an airport saved by a user together with a free-text note.
type Favorite struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"not null;index;size:36" json:"user_id"`
	AirportID string    `gorm:"not null;size:3" json:"airport_id"`
	Note      string    `gorm:"size:1000" json:"note"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Airport Airport `gorm:"foreignKey:AirportID" json:"airport"`
}

// TableName returns the table name for Favorite
func (Favorite) TableName() string {
	return "favorites"
}

// BeforeCreate assigns the identifier.
func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// FavoriteAttributes is the attribute set of a favorite resource.
type FavoriteAttributes struct {
	Airport   AirportAttributes `json:"airport"`
	Note      string            `json:"note"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Attributes returns the public attribute set, with the airport resolved.
func (f Favorite) Attributes() FavoriteAttributes {
	return FavoriteAttributes{
		Airport:   f.Airport.Attributes(),
		Note:      f.Note,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
