package models

type FillBlankAnswer struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	QuestionID uint   `json:"question_id" gorm:"not null;uniqueIndex"`
	Answer     string `json:"answer"`
}
