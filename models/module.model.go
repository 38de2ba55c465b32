package models

import "time"

// Module represents a top-level course unit containing ordered lessons
type Module struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	LessonCount int       `json:"lessons" gorm:"column:lessons;not null;default:0"` // denormalized, maintained by the admin panel
	Duration    string    `json:"duration" gorm:"not null"`                         // free-text label, e.g. "2 hours"
	OrderIndex  int       `json:"order" gorm:"column:order_index;not null;default:0"`
	IsPublished bool      `json:"isPublished" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
