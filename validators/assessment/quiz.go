package assessmentValidator

import (
	"strconv"
	"strings"

	"lms/middleware"
	assessment "lms/models/assessment"

	"github.com/gofiber/fiber/v2"
)

func isValidQuestionType(t string) bool {
	return t == assessment.TypeMCQ || t == assessment.TypeTrueFalse || t == assessment.TypeBoth
}

func isValidQuizDifficulty(d string) bool {
	return d == assessment.DifficultyEasy || d == assessment.DifficultyMedium ||
		d == assessment.DifficultyHard || d == assessment.DifficultyMixed
}

// CreateQuiz validates the quiz creation payload
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, err := parseModuleID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
		}

		reqData := new(struct {
			CourseID          uint   `json:"course_id"`
			NumberOfQuestions int    `json:"number_of_questions"`
			QuestionType      string `json:"question_type"`
			Difficulty        string `json:"difficulty"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID < 1 {
			errors["course_id"] = "Course ID is required!"
		}

		if reqData.NumberOfQuestions < 1 {
			errors["number_of_questions"] = "Number of questions must be greater than 0!"
		}

		if !isValidQuestionType(reqData.QuestionType) {
			errors["question_type"] = "Question type must be MCQ, TF or Both!"
		}

		if !isValidQuizDifficulty(reqData.Difficulty) {
			errors["difficulty"] = "Difficulty must be easy, medium, hard or mixed!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// QuizPatch carries the editable quiz fields; zero values are not applied
type QuizPatch struct {
	QuestionType      string `json:"question_type"`
	Difficulty        string `json:"difficulty"`
	NumberOfQuestions int    `json:"number_of_questions"`
}

// UpdateQuiz validates a partial quiz update
func UpdateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID := strings.TrimSpace(c.Params("quiz_id"))
		if quizID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
		}

		reqData := new(QuizPatch)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.QuestionType != "" && !isValidQuestionType(reqData.QuestionType) {
			errors["question_type"] = "Question type must be MCQ, TF or Both!"
		}

		if reqData.Difficulty != "" && !isValidQuizDifficulty(reqData.Difficulty) {
			errors["difficulty"] = "Difficulty must be easy, medium, hard or mixed!"
		}

		if reqData.NumberOfQuestions < 0 {
			errors["number_of_questions"] = "Number of questions must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("quizID", quizID)
		c.Locals("validatedQuizPatch", reqData)
		return c.Next()
	}
}

// QuizID validates the :quiz_id route param
func QuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID := strings.TrimSpace(c.Params("quiz_id"))
		if quizID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
		}

		c.Locals("quizID", quizID)
		return c.Next()
	}
}

// ModuleID validates the :module_id route param
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, err := parseModuleID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
		}

		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}

// CourseID validates the :course_id route param
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(c.Params("course_id"))
		if err != nil || courseID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}
