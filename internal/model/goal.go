package model

import "time"

// Goal priorities. Zero renders without a badge.
const (
	PriorityNone = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

// Goal is one node of a mind-map. ParentID is nil for roots, so the
// goals of a file form a forest.
type Goal struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	ParentID    *uint     `gorm:"index" json:"parent_id"`
	FileID      uint      `gorm:"index;not null" json:"file_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Status      string    `gorm:"default:active" json:"status"`
	Priority    int       `gorm:"default:1" json:"priority"`
	OrderIndex  int       `gorm:"default:0" json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
