package models

// Question types supported by the authoring API.
const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeFillBlank      = "fill_blank"
)

type Question struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	QuizID uint   `json:"quiz_id" gorm:"not null;index"`
	Text   string `json:"text" gorm:"not null"`
	Type   string `json:"type" gorm:"not null"`

	// Relationships. Options and Answer are mutually exclusive: a
	// multiple_choice question owns options, a fill_blank question owns at
	// most one answer row.
	Options []Option         `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	Answer  *FillBlankAnswer `json:"answer,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}
