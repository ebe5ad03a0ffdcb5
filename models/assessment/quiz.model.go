package assessment

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz is a published assessment for a module. Questions holds the set
// sampled from the question bank at creation time, copied by value, so
// later bank edits never change it. IsAttempted locks the quiz against
// edits and deletion once any student has submitted.
type Quiz struct {
	gorm.Model
	QuizID            string                         `json:"quiz_id" gorm:"uniqueIndex;not null"`
	ModuleID          uint                           `json:"module_id" gorm:"index;not null"`
	CourseID          uint                           `json:"course_id" gorm:"index;not null"`
	QuestionType      string                         `json:"question_type"` // MCQ, TF, Both
	Difficulty        string                         `json:"difficulty"`    // easy, medium, hard, mixed
	NumberOfQuestions int                            `json:"number_of_questions"`
	Questions         datatypes.JSONType[[]Question] `json:"questions"`
	IsAttempted       bool                           `json:"is_attempted" gorm:"default:false"`
	IsDeleted         bool                           `gorm:"default:false"`
}
