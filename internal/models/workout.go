package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Workout is a single exercise entry owned by a user.
type Workout struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"`
	UserID    string    `gorm:"not null;index;size:36" json:"user_id"`
	Title     string    `gorm:"not null;size:255" json:"title"`
	Reps      int       `gorm:"not null;default:0" json:"reps"`
	Load      float64   `gorm:"not null;default:0" json:"load"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for Workout
func (Workout) TableName() string {
	return "workouts"
}

// BeforeCreate assigns the identifier.
func (w *Workout) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
