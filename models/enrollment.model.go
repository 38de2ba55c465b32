package models

import "time"

// Enrollment tracks a user's course participation with coarse progress.
// CompletedAt is set exactly when progress hits 100 and cleared otherwise.
type Enrollment struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	UserID      uint       `json:"userId" gorm:"index;not null"`
	Enrolled    bool       `json:"enrolled" gorm:"not null;default:false"`
	Progress    int        `json:"progress" gorm:"not null;default:0"` // 0-100
	CompletedAt *time.Time `json:"completedAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}
