package models

import "time"

type Quiz struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	TeacherID   uint      `json:"teacher_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Teacher   User       `json:"-" gorm:"foreignKey:TeacherID"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}
