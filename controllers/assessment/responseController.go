package controllers

import (
	"time"

	"lms/database"
	"lms/middleware"
	assessment "lms/models/assessment"
	assessmentValidator "lms/validators/assessment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// findQuestion locates a frozen quiz question by its stable identifier
func findQuestion(questions []assessment.Question, questionID string) *assessment.Question {
	for i := range questions {
		if questions[i].QuestionID == questionID {
			return &questions[i]
		}
	}
	return nil
}

// SubmitResponse grades a student's answers against the quiz's frozen
// question list, records the response and locks the quiz against edits.
// Submissions are not idempotent: a second submission by the same student
// inserts another response row.
func SubmitResponse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(string)

	reqData, ok := c.Locals("validatedAnswers").(*struct {
		Answers []assessmentValidator.SubmittedAnswer `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var quiz assessment.Quiz
	if err := db.Where("quiz_id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	frozen := quiz.Questions.Data()

	score := 0
	graded := make([]assessment.Answer, 0, len(reqData.Answers))
	feedback := make([]fiber.Map, 0)

	for _, answer := range reqData.Answers {
		question := findQuestion(frozen, answer.QuestionID)
		if question == nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found in this quiz!", nil)
		}

		isCorrect := question.Answer == answer.SelectedOption
		if isCorrect {
			score++
		} else {
			feedback = append(feedback, fiber.Map{
				"question_id":    answer.QuestionID,
				"correct_answer": question.Answer,
				"your_answer":    answer.SelectedOption,
			})
		}

		graded = append(graded, assessment.Answer{
			QuestionID:     answer.QuestionID,
			SelectedOption: answer.SelectedOption,
			IsCorrect:      isCorrect,
		})
	}

	response := assessment.Response{
		StudentID:   userID,
		QuizID:      quizID,
		Answers:     datatypes.NewJSONType(graded),
		Score:       score,
		SubmittedAt: time.Now(),
	}

	if err := db.Create(&response).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit response!", nil)
	}

	// The flag locks the quiz against edits and deletion. It is global to
	// the quiz, not scoped to the submitting student.
	quiz.IsAttempted = true
	if err := db.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	message := "You need to study again!"
	if float64(score) >= 0.6*float64(len(frozen)) {
		message = "You passed!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Response submitted successfully!", fiber.Map{
		"student_id": userID,
		"quiz_id":    quizID,
		"score":      score,
		"feedback":   feedback,
		"message":    message,
	})
}

// GetFeedback rejoins the student's stored response against the quiz's
// frozen question list. A missing response means the student has not
// submitted yet.
func GetFeedback(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(string)

	db := database.Database.Db

	var response assessment.Response
	if err := db.Where("quiz_id = ? AND student_id = ? AND is_deleted = ?", quizID, userID, false).First(&response).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No response found for this quiz!", nil)
	}

	var quiz assessment.Quiz
	if err := db.Where("quiz_id = ?", quizID).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	frozen := quiz.Questions.Data()

	feedback := make([]fiber.Map, 0)
	for _, answer := range response.Answers.Data() {
		question := findQuestion(frozen, answer.QuestionID)
		if question == nil {
			feedback = append(feedback, fiber.Map{
				"question_id": answer.QuestionID,
				"feedback":    "Question not found in quiz",
			})
			continue
		}
		feedback = append(feedback, fiber.Map{
			"question_id":     answer.QuestionID,
			"selected_option": answer.SelectedOption,
			"correct_option":  question.Answer,
			"is_correct":      answer.SelectedOption == question.Answer,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback fetched successfully!", fiber.Map{
		"score":    response.Score,
		"feedback": feedback,
	})
}
