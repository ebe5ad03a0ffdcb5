package controllers

import (
	"lms/database"
	"lms/middleware"
	assessment "lms/models/assessment"
	courseModels "lms/models/course"
	assessmentValidator "lms/validators/assessment"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// toQuestions converts validated payloads into bank questions, assigning
// each one a stable generated identifier. That identifier, not the question
// text, is what quiz generation, attempts and grading match on.
func toQuestions(payloads []assessmentValidator.QuestionPayload) []assessment.Question {
	questions := make([]assessment.Question, len(payloads))
	for i, p := range payloads {
		questions[i] = assessment.Question{
			QuestionID: uuid.NewString(),
			Question:   p.Question,
			Options:    p.Options,
			Answer:     p.Answer,
			Type:       p.Type,
			Difficulty: p.Difficulty,
		}
	}
	return questions
}

// CreateQuestionBank creates the question bank for a module
func CreateQuestionBank(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBank").(*struct {
		ModuleID  uint                                  `json:"module_id"`
		Questions []assessmentValidator.QuestionPayload `json:"questions"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if module exists
	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = ?", reqData.ModuleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	// One bank per module
	var existingBank assessment.QuestionBank
	if err := db.Where("module_id = ? AND is_deleted = ?", reqData.ModuleID, false).First(&existingBank).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A question bank for this module already exists!", nil)
	}

	bank := assessment.QuestionBank{
		ModuleID:  reqData.ModuleID,
		Questions: datatypes.NewJSONType(toQuestions(reqData.Questions)),
	}

	if err := db.Create(&bank).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question bank!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question bank created successfully!", bank)
}

// GetQuestionBank returns the question bank for a module
func GetQuestionBank(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	var bank assessment.QuestionBank
	if err := database.Database.Db.Where("module_id = ? AND is_deleted = ?", moduleID, false).First(&bank).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No question bank found for this module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question bank fetched successfully!", bank)
}

// AppendQuestions appends questions to an existing bank in input order
func AppendQuestions(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	reqData, ok := c.Locals("validatedQuestions").(*struct {
		Questions []assessmentValidator.QuestionPayload `json:"questions"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var bank assessment.QuestionBank
	if err := db.Where("module_id = ? AND is_deleted = ?", moduleID, false).First(&bank).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No question bank found for this module!", nil)
	}

	questions := bank.Questions.Data()
	questions = append(questions, toQuestions(reqData.Questions)...)
	bank.Questions = datatypes.NewJSONType(questions)

	if err := db.Save(&bank).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add questions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions added successfully!", bank)
}

// EditQuestion updates one question addressed by its position in the bank.
// Addressing is positional, not identity based: a concurrent insert or
// delete can shift which question an index refers to.
func EditQuestion(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)
	index := c.Locals("questionIndex").(int)

	reqData, ok := c.Locals("validatedPatch").(*assessmentValidator.QuestionPatch)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var bank assessment.QuestionBank
	if err := db.Where("module_id = ? AND is_deleted = ?", moduleID, false).First(&bank).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No question bank found for this module!", nil)
	}

	questions := bank.Questions.Data()
	if index < 0 || index >= len(questions) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Invalid question index!", nil)
	}

	// Merge only the supplied fields
	question := &questions[index]
	if reqData.Question != "" {
		question.Question = reqData.Question
	}
	if reqData.Options != nil {
		question.Options = *reqData.Options
	}
	if reqData.Answer != "" {
		question.Answer = reqData.Answer
	}
	if reqData.Type != "" {
		question.Type = reqData.Type
	}
	if reqData.Difficulty != "" {
		question.Difficulty = reqData.Difficulty
	}

	bank.Questions = datatypes.NewJSONType(questions)
	if err := db.Save(&bank).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", questions[index])
}

// DeleteQuestion removes one question addressed by its position in the bank.
// Subsequent questions shift down, so indices are not stable across calls.
func DeleteQuestion(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)
	index := c.Locals("questionIndex").(int)

	db := database.Database.Db

	var bank assessment.QuestionBank
	if err := db.Where("module_id = ? AND is_deleted = ?", moduleID, false).First(&bank).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No question bank found for this module!", nil)
	}

	questions := bank.Questions.Data()
	if index < 0 || index >= len(questions) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Invalid question index!", nil)
	}

	questions = append(questions[:index], questions[index+1:]...)
	bank.Questions = datatypes.NewJSONType(questions)

	if err := db.Save(&bank).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
