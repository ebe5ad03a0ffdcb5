package assessmentRoutes

import (
	controllers "lms/controllers/assessment"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/assessment"

	"github.com/gofiber/fiber/v2"
)

// SetupAssessmentRoutes sets up question bank, quiz and response routes
func SetupAssessmentRoutes(app *fiber.App) {
	// Question bank management (instructors author, students may view)
	bankGroup := app.Group("/question-bank")
	bankGroup.Post("/add", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.CreateQuestionBank(), controllers.CreateQuestionBank)
	bankGroup.Get("/:module_id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor, models.RoleStudent), validators.ModuleID(), controllers.GetQuestionBank)
	bankGroup.Patch("/:module_id/questions", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.AppendQuestions(), controllers.AppendQuestions)
	bankGroup.Patch("/:module_id/question/:index", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.EditQuestion(), controllers.EditQuestion)
	bankGroup.Delete("/:module_id/question/:index", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.DeleteQuestion(), controllers.DeleteQuestion)

	// Quiz catalog
	quizGroup := app.Group("/quiz")
	quizGroup.Post("/create/:module_id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.CreateQuiz(), controllers.CreateQuiz)
	quizGroup.Get("/student/list", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), controllers.GetStudentQuizzes)
	quizGroup.Get("/module/:module_id", middleware.JWTMiddleware, validators.ModuleID(), controllers.GetQuizByModule)
	quizGroup.Get("/course/:course_id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetQuizzesForCourse)
	quizGroup.Post("/:quiz_id/start", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), validators.QuizID(), controllers.StartQuiz)
	quizGroup.Patch("/:quiz_id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.UpdateQuiz(), controllers.UpdateQuiz)
	quizGroup.Delete("/:quiz_id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.QuizID(), controllers.DeleteQuiz)

	// Responses and feedback (students)
	responseGroup := app.Group("/response")
	responseGroup.Post("/:quiz_id/submit", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), validators.SubmitResponse(), controllers.SubmitResponse)
	responseGroup.Get("/feedback/:quiz_id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), validators.GetFeedback(), controllers.GetFeedback)
}
