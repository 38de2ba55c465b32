package models

import "time"

// Lesson is a single unit of content within a module. Video fields are
// derived from YoutubeURL on the server, never taken from the client.
type Lesson struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	ModuleID       uint      `json:"moduleId" gorm:"index;not null"`
	Title          string    `json:"title" gorm:"not null"`
	Description    string    `json:"description" gorm:"not null"`
	YoutubeURL     *string   `json:"youtubeUrl"`
	YoutubeVideoID *string   `json:"youtubeVideoId"`
	VideoThumbnail *string   `json:"videoThumbnail"`
	PdfURL         *string   `json:"pdfUrl"`
	PdfFileName    *string   `json:"pdfFileName"`
	OrderIndex     int       `json:"order" gorm:"column:order_index;not null;default:0"`
	Duration       string    `json:"duration" gorm:"not null"`
	IsPublished    bool      `json:"isPublished" gorm:"not null;default:false"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
