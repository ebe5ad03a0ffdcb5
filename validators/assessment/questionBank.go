package assessmentValidator

import (
	"fmt"
	"strconv"

	"lms/middleware"
	assessment "lms/models/assessment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// QuestionPayload is the wire shape of an authored question
type QuestionPayload struct {
	Question   string   `json:"question" validate:"required"`
	Options    []string `json:"options"`
	Answer     string   `json:"answer" validate:"required"`
	Type       string   `json:"type" validate:"required,oneof=MCQ TF"`
	Difficulty string   `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

// answerInOptions checks the MCQ invariant: the answer must be one of the options
func answerInOptions(q QuestionPayload) bool {
	if q.Type != assessment.TypeMCQ {
		return true
	}
	for _, opt := range q.Options {
		if opt == q.Answer {
			return true
		}
	}
	return false
}

// parseModuleID reads and validates the :module_id route param
func parseModuleID(c *fiber.Ctx) (int, error) {
	moduleID, err := strconv.Atoi(c.Params("module_id"))
	if err != nil || moduleID < 1 {
		return 0, fmt.Errorf("invalid module id")
	}
	return moduleID, nil
}

// CreateQuestionBank validates the initial bank payload for a module
func CreateQuestionBank() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ModuleID  uint              `json:"module_id"`
			Questions []QuestionPayload `json:"questions"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ModuleID < 1 {
			errors["module_id"] = "Module ID is required!"
		}

		if len(reqData.Questions) == 0 {
			errors["questions"] = "At least one question is required!"
		}

		for i, q := range reqData.Questions {
			if err := validate.Struct(q); err != nil {
				errors[fmt.Sprintf("questions[%d]", i)] = "Question, answer, type (MCQ/TF) and difficulty (easy/medium/hard) are required!"
				continue
			}
			if !answerInOptions(q) {
				errors[fmt.Sprintf("questions[%d]", i)] = "Answer must be one of the options for MCQ questions!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBank", reqData)
		return c.Next()
	}
}

// AppendQuestions validates questions being appended to an existing bank.
// A missing difficulty is a 400, matching the append contract.
func AppendQuestions() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, err := parseModuleID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
		}

		reqData := new(struct {
			Questions []QuestionPayload `json:"questions"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Questions) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No questions provided to add!", nil)
		}

		for i, q := range reqData.Questions {
			if q.Difficulty == "" {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, fmt.Sprintf("Difficulty is required for question %d!", i+1), nil)
			}
			if !answerInOptions(q) {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, fmt.Sprintf("Answer must be one of the options for question %d!", i+1), nil)
			}
		}

		c.Locals("moduleID", moduleID)
		c.Locals("validatedQuestions", reqData)
		return c.Next()
	}
}

// QuestionPatch carries the fields of a positional question edit. Empty
// fields are left untouched by the controller; Options is only replaced
// when present in the payload.
type QuestionPatch struct {
	Question   string    `json:"question"`
	Options    *[]string `json:"options"`
	Answer     string    `json:"answer"`
	Type       string    `json:"type"`
	Difficulty string    `json:"difficulty"`
}

// EditQuestion validates a positional edit of a bank question
func EditQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, err := parseModuleID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
		}

		index, err := strconv.Atoi(c.Params("index"))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question index!", nil)
		}

		reqData := new(QuestionPatch)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Type != "" && reqData.Type != assessment.TypeMCQ && reqData.Type != assessment.TypeTrueFalse {
			errors["type"] = "Type must be MCQ or TF!"
		}

		if reqData.Difficulty != "" &&
			reqData.Difficulty != assessment.DifficultyEasy &&
			reqData.Difficulty != assessment.DifficultyMedium &&
			reqData.Difficulty != assessment.DifficultyHard {
			errors["difficulty"] = "Difficulty must be easy, medium or hard!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("questionIndex", index)
		c.Locals("validatedPatch", reqData)
		return c.Next()
	}
}

// DeleteQuestion validates a positional delete of a bank question
func DeleteQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, err := parseModuleID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
		}

		index, err := strconv.Atoi(c.Params("index"))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question index!", nil)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("questionIndex", index)
		return c.Next()
	}
}
