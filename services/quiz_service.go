package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"quizzo/models"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// QuizPayload is the full quiz submitted on create and update. Updates carry
// replace semantics: the question set supplied here always becomes the entire
// question set of the quiz.
type QuizPayload struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Questions   []QuestionPayload `json:"questions"`
}

type QuestionPayload struct {
	Text    string          `json:"text"`
	Type    string          `json:"type"`
	Options []OptionPayload `json:"options"`
	Answer  *string         `json:"answer"`
}

type OptionPayload struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

const maxOptionsPerQuestion = 4

// Validate checks the payload shape before any transaction starts. A payload
// that passes here can only fail persistence through a storage error.
func (p *QuizPayload) Validate() error {
	if p.Title == "" {
		return validationErr("Title is required")
	}
	if p.Description == "" {
		return validationErr("Description is required")
	}
	for i, q := range p.Questions {
		if q.Text == "" {
			return validationErr(fmt.Sprintf("Question %d is missing text", i+1))
		}
		switch q.Type {
		case models.QuestionTypeMultipleChoice:
			if len(q.Options) == 0 {
				return validationErr(fmt.Sprintf("Question %d must have at least one option", i+1))
			}
			if len(q.Options) > maxOptionsPerQuestion {
				return validationErr(fmt.Sprintf("Question %d has more than %d options", i+1, maxOptionsPerQuestion))
			}
			hasCorrect := false
			for _, opt := range q.Options {
				if opt.Text == "" {
					return validationErr(fmt.Sprintf("Question %d has an option with no text", i+1))
				}
				if opt.IsCorrect {
					hasCorrect = true
				}
			}
			if !hasCorrect {
				return validationErr(fmt.Sprintf("Question %d must have a correct option", i+1))
			}
		case models.QuestionTypeFillBlank:
			if len(q.Options) > 0 {
				return validationErr(fmt.Sprintf("Question %d is fill_blank and cannot have options", i+1))
			}
		default:
			return validationErr(fmt.Sprintf("Question %d has an unknown type", i+1))
		}
	}
	return nil
}

// QuizDetail is the assembled read model for a single quiz: questions in
// insertion order, each carrying its options or its fill-blank answer.
type QuizDetail struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	TeacherID   uint             `json:"teacher_id"`
	CreatedAt   time.Time        `json:"created_at"`
	Questions   []QuestionDetail `json:"questions"`
}

type QuestionDetail struct {
	ID      uint            `json:"id"`
	QuizID  uint            `json:"quiz_id"`
	Text    string          `json:"text"`
	Type    string          `json:"type"`
	Options []models.Option `json:"options,omitempty"`
	Answer  *string         `json:"answer,omitempty"`
}

// ownership is the internal three-way result of a quiz lookup. Callers
// outside this package only ever see ErrQuizNotFound: a quiz owned by someone
// else must be indistinguishable from a quiz that does not exist.
type ownership int

const (
	ownershipMissing ownership = iota
	ownershipOwned
	ownershipForeign
)

func quizOwnership(tx *gorm.DB, quizID, teacherID uint) (ownership, error) {
	var quiz models.Quiz
	err := tx.Select("id", "teacher_id").First(&quiz, quizID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ownershipMissing, nil
	}
	if err != nil {
		return ownershipMissing, err
	}
	if quiz.TeacherID != teacherID {
		return ownershipForeign, nil
	}
	return ownershipOwned, nil
}

// CreateQuiz persists a quiz and its full question set in one transaction and
// returns the new quiz id. Nothing is visible to readers until commit.
func (s *QuizService) CreateQuiz(teacherID uint, payload *QuizPayload) (uint, error) {
	if err := payload.Validate(); err != nil {
		return 0, err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	quiz := models.Quiz{
		Title:       payload.Title,
		Description: payload.Description,
		TeacherID:   teacherID,
	}
	if err := tx.Create(&quiz).Error; err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := insertQuestions(tx, quiz.ID, payload.Questions); err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}
	return quiz.ID, nil
}

// insertQuestions writes the question set in input order; input order becomes
// the canonical order because ids are assigned ascending.
func insertQuestions(tx *gorm.DB, quizID uint, questions []QuestionPayload) error {
	for _, qp := range questions {
		question := models.Question{
			QuizID: quizID,
			Text:   qp.Text,
			Type:   qp.Type,
		}
		if err := tx.Create(&question).Error; err != nil {
			return err
		}

		switch qp.Type {
		case models.QuestionTypeMultipleChoice:
			for _, op := range qp.Options {
				option := models.Option{
					QuestionID: question.ID,
					Text:       op.Text,
					IsCorrect:  op.IsCorrect,
				}
				if err := tx.Create(&option).Error; err != nil {
					return err
				}
			}
		case models.QuestionTypeFillBlank:
			if qp.Answer != nil {
				answer := models.FillBlankAnswer{
					QuestionID: question.ID,
					Answer:     *qp.Answer,
				}
				if err := tx.Create(&answer).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// ListQuizzes returns the caller's quizzes, most recent first, without their
// question sets.
func (s *QuizService) ListQuizzes(teacherID uint) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.db.Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&quizzes).Error
	return quizzes, err
}

// GetQuiz assembles one quiz with its questions. A quiz owned by another
// teacher yields ErrQuizNotFound, same as a missing id.
func (s *QuizService) GetQuiz(teacherID, quizID uint) (*QuizDetail, error) {
	owns, err := quizOwnership(s.db, quizID, teacherID)
	if err != nil {
		return nil, err
	}
	if owns != ownershipOwned {
		return nil, ErrQuizNotFound
	}

	var quiz models.Quiz
	err = s.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.id")
		}).
		Preload("Questions.Answer").
		First(&quiz, quizID).Error
	if err != nil {
		return nil, err
	}

	detail := &QuizDetail{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		TeacherID:   quiz.TeacherID,
		CreatedAt:   quiz.CreatedAt,
		Questions:   make([]QuestionDetail, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		qd := QuestionDetail{
			ID:     q.ID,
			QuizID: q.QuizID,
			Text:   q.Text,
			Type:   q.Type,
		}
		switch q.Type {
		case models.QuestionTypeMultipleChoice:
			qd.Options = q.Options
		case models.QuestionTypeFillBlank:
			if q.Answer != nil {
				qd.Answer = &q.Answer.Answer
			}
		}
		detail.Questions = append(detail.Questions, qd)
	}
	return detail, nil
}

// UpdateQuiz replaces the quiz's title, description, and entire question set
// in one transaction. The old set is deleted (cascading to options and
// answers) and the submitted set re-inserted, so readers only ever observe
// the complete old set or the complete new one.
func (s *QuizService) UpdateQuiz(teacherID, quizID uint, payload *QuizPayload) error {
	if err := payload.Validate(); err != nil {
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	owns, err := quizOwnership(tx, quizID, teacherID)
	if err != nil {
		tx.Rollback()
		return err
	}
	if owns != ownershipOwned {
		tx.Rollback()
		return ErrQuizNotFound
	}

	updates := map[string]interface{}{
		"title":       payload.Title,
		"description": payload.Description,
	}
	if err := tx.Model(&models.Quiz{}).Where("id = ?", quizID).Updates(updates).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Where("quiz_id = ?", quizID).Delete(&models.Question{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := insertQuestions(tx, quizID, payload.Questions); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// DeleteQuiz removes the quiz and, by cascade, all of its questions, options,
// and answers.
func (s *QuizService) DeleteQuiz(teacherID, quizID uint) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	owns, err := quizOwnership(tx, quizID, teacherID)
	if err != nil {
		tx.Rollback()
		return err
	}
	if owns != ownershipOwned {
		tx.Rollback()
		return ErrQuizNotFound
	}

	if err := tx.Delete(&models.Quiz{}, quizID).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
