package controllers

import (
	"math/rand"

	"lms/database"
	"lms/middleware"
	assessment "lms/models/assessment"
	courseModels "lms/models/course"
	assessmentValidator "lms/validators/assessment"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// filterQuestions keeps questions matching the quiz criteria exactly.
// "Both" and "mixed" are stored values, not wildcards: a quiz created
// with them only matches questions carrying those literal values.
func filterQuestions(questions []assessment.Question, questionType, difficulty string) []assessment.Question {
	var filtered []assessment.Question
	for _, q := range questions {
		if q.Type == questionType && q.Difficulty == difficulty {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// shuffledCopy returns a uniformly shuffled copy of the question list
func shuffledCopy(questions []assessment.Question) []assessment.Question {
	shuffled := make([]assessment.Question, len(questions))
	copy(shuffled, questions)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// stripAnswers returns presentation copies of the questions without the
// correct answer filled in
func stripAnswers(questions []assessment.Question) []assessment.Question {
	stripped := make([]assessment.Question, len(questions))
	for i, q := range questions {
		q.Answer = ""
		stripped[i] = q
	}
	return stripped
}

// CreateQuiz samples questions from the module's bank and publishes a quiz.
// The selected questions are copied by value into the quiz, so later bank
// edits never change a published quiz.
func CreateQuiz(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	reqData, ok := c.Locals("validatedQuiz").(*struct {
		CourseID          uint   `json:"course_id"`
		NumberOfQuestions int    `json:"number_of_questions"`
		QuestionType      string `json:"question_type"`
		Difficulty        string `json:"difficulty"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if course exists
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Check if module exists
	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	// At most one live quiz per module
	var existingQuiz assessment.Quiz
	if err := db.Where("module_id = ? AND is_deleted = ?", moduleID, false).First(&existingQuiz).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A quiz for this module already exists!", nil)
	}

	var bank assessment.QuestionBank
	if err := db.Where("module_id = ? AND is_deleted = ?", moduleID, false).First(&bank).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No question bank found for this module!", nil)
	}

	bankQuestions := bank.Questions.Data()
	if len(bankQuestions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No question bank found for this module!", nil)
	}

	filtered := filterQuestions(bankQuestions, reqData.QuestionType, reqData.Difficulty)
	if len(filtered) < reqData.NumberOfQuestions {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Not enough questions available in the question bank!", nil)
	}

	selected := shuffledCopy(filtered)[:reqData.NumberOfQuestions]

	quiz := assessment.Quiz{
		QuizID:            "QUIZ-" + uuid.NewString(),
		ModuleID:          uint(moduleID),
		CourseID:          reqData.CourseID,
		QuestionType:      reqData.QuestionType,
		Difficulty:        reqData.Difficulty,
		NumberOfQuestions: reqData.NumberOfQuestions,
		Questions:         datatypes.NewJSONType(selected),
	}

	if err := db.Create(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// GetQuizByModule returns the quiz published for a module
func GetQuizByModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	var quiz assessment.Quiz
	if err := database.Database.Db.Where("module_id = ? AND is_deleted = ?", moduleID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found for this module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", quiz)
}

// GetQuizzesForCourse lists the quizzes of a course. An empty result set
// is reported as not found, so callers treat "no quizzes yet" as an error
// state rather than an empty list.
func GetQuizzesForCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var quizzes []assessment.Quiz
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	if len(quizzes) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No quizzes found for this course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", quizzes)
}

// GetStudentQuizzes lists quizzes for all courses the student is enrolled in
func GetStudentQuizzes(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var enrollments []courseModels.Enrollment
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	courseIDs := make([]uint, len(enrollments))
	for i, e := range enrollments {
		courseIDs[i] = e.CourseID
	}

	var quizzes []assessment.Quiz
	if len(courseIDs) > 0 {
		if err := db.Where("course_id IN ? AND is_deleted = ?", courseIDs, false).Find(&quizzes).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", quizzes)
}

// UpdateQuiz merges the supplied fields into an unattempted quiz
func UpdateQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(string)

	reqData, ok := c.Locals("validatedQuizPatch").(*assessmentValidator.QuizPatch)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var quiz assessment.Quiz
	if err := db.Where("quiz_id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if quiz.IsAttempted {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Quiz cannot be edited as it has been attempted!", nil)
	}

	if reqData.QuestionType != "" {
		quiz.QuestionType = reqData.QuestionType
	}
	if reqData.Difficulty != "" {
		quiz.Difficulty = reqData.Difficulty
	}
	if reqData.NumberOfQuestions > 0 {
		quiz.NumberOfQuestions = reqData.NumberOfQuestions
	}

	if err := db.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", quiz)
}

// DeleteQuiz soft deletes an unattempted quiz
func DeleteQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(string)

	db := database.Database.Db

	var quiz assessment.Quiz
	if err := db.Where("quiz_id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if quiz.IsAttempted {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Quiz cannot be deleted as it has been attempted!", nil)
	}

	if err := db.Model(&quiz).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully!", nil)
}

// StartQuiz generates the question set a student sees for an attempt. The
// pool is re-filtered from the current question bank using the quiz's
// stored criteria, so repeated starts can return different subsets. This
// only reads; nothing about the attempt is persisted here.
func StartQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(string)

	db := database.Database.Db

	var quiz assessment.Quiz
	if err := db.Where("quiz_id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var bank assessment.QuestionBank
	if err := db.Where("module_id = ? AND is_deleted = ?", quiz.ModuleID, false).First(&bank).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No question bank found for this module!", nil)
	}

	bankQuestions := bank.Questions.Data()
	if len(bankQuestions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No question bank found for this module!", nil)
	}

	filtered := filterQuestions(bankQuestions, quiz.QuestionType, quiz.Difficulty)
	if len(filtered) < quiz.NumberOfQuestions {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Not enough questions available for this quiz!", nil)
	}

	// Randomize and collect distinct questions by identifier
	seen := make(map[string]bool)
	var selected []assessment.Question
	for _, q := range shuffledCopy(filtered) {
		if seen[q.QuestionID] {
			continue
		}
		seen[q.QuestionID] = true
		selected = append(selected, q)
		if len(selected) == quiz.NumberOfQuestions {
			break
		}
	}

	if len(selected) < quiz.NumberOfQuestions {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Could not generate enough unique questions for this quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz started!", fiber.Map{
		"quiz_id":   quiz.QuizID,
		"module_id": quiz.ModuleID,
		"questions": stripAnswers(selected),
	})
}
