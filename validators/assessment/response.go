package assessmentValidator

import (
	"fmt"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// SubmittedAnswer is one answer in a submission payload
type SubmittedAnswer struct {
	QuestionID     string `json:"question_id"`
	SelectedOption string `json:"selected_option"`
}

// SubmitResponse validates a quiz submission payload
func SubmitResponse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID := strings.TrimSpace(c.Params("quiz_id"))
		if quizID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
		}

		reqData := new(struct {
			Answers []SubmittedAnswer `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Answers) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please submit at least one answer!", nil)
		}

		for i, a := range reqData.Answers {
			if strings.TrimSpace(a.QuestionID) == "" {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, fmt.Sprintf("Question ID is required for answer %d!", i+1), nil)
			}
		}

		c.Locals("quizID", quizID)
		c.Locals("validatedAnswers", reqData)
		return c.Next()
	}
}

// GetFeedback validates the :quiz_id route param for feedback retrieval
func GetFeedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID := strings.TrimSpace(c.Params("quiz_id"))
		if quizID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
		}

		c.Locals("quizID", quizID)
		return c.Next()
	}
}
