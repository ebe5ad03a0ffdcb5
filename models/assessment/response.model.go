package assessment

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Answer is one graded entry within a response.
type Answer struct {
	QuestionID     string `json:"question_id"`
	SelectedOption string `json:"selected_option"`
	IsCorrect      bool   `json:"is_correct"`
}

// Response is the persisted record of one quiz submission. Rows are
// written once and never mutated by this subsystem.
type Response struct {
	gorm.Model
	StudentID   uint                         `json:"student_id" gorm:"index;not null"`
	QuizID      string                       `json:"quiz_id" gorm:"index;not null"`
	Answers     datatypes.JSONType[[]Answer] `json:"answers"`
	Score       int                          `json:"score"`
	SubmittedAt time.Time                    `json:"submitted_at"`
	IsDeleted   bool                         `gorm:"default:false"`
}
