package model

import "time"

// File is a named mind-map container. Every goal lives in exactly one
// file and every user keeps at least one file at all times.
type File struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Goals []Goal `gorm:"foreignKey:FileID" json:"-"`
}
