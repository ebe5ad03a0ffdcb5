package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	assessmentRoutes "lms/routers/assessmentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	app    *fiber.App
	db     *gorm.DB
	course courseModels.Course
	module courseModels.Module

	instructorToken string
	studentToken    string
	studentID       uint
}

// newTestEnv wires a fresh in-memory database and the assessment routes,
// seeded with an instructor, a student, a course and a module.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "0",
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	assessmentRoutes.SetupAssessmentRoutes(app)

	instructor := models.User{Name: "Ina Instructor", Email: "ina@example.com", Mobile: "9000000001", Role: models.RoleInstructor}
	require.NoError(t, db.Create(&instructor).Error)

	student := models.User{Name: "Sam Student", Email: "sam@example.com", Mobile: "9000000002", Role: models.RoleStudent}
	require.NoError(t, db.Create(&student).Error)

	course := courseModels.Course{Title: "Go Basics", Description: "Introductory course", InstructorID: instructor.ID}
	require.NoError(t, db.Create(&course).Error)

	module := courseModels.Module{CourseID: course.ID, Title: "Slices and Maps", OrderIndex: 1}
	require.NoError(t, db.Create(&module).Error)

	instructorToken, err := middleware.GenerateJWT(instructor.ID, instructor.Name, instructor.Role, instructor.Email)
	require.NoError(t, err)

	studentToken, err := middleware.GenerateJWT(student.ID, student.Name, student.Role, student.Email)
	require.NoError(t, err)

	return &testEnv{
		app:             app,
		db:              db,
		course:          course,
		module:          module,
		instructorToken: instructorToken,
		studentToken:    studentToken,
		studentID:       student.ID,
	}
}

// doRequest sends a JSON request through the app and decodes the envelope
func (e *testEnv) doRequest(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	return resp.StatusCode, envelope
}

// mcq builds an MCQ question payload whose first option is the answer
func mcq(text, difficulty string, options ...string) map[string]interface{} {
	return map[string]interface{}{
		"question":   text,
		"options":    options,
		"answer":     options[0],
		"type":       "MCQ",
		"difficulty": difficulty,
	}
}

// tf builds a True/False question payload
func tf(text, answer, difficulty string) map[string]interface{} {
	return map[string]interface{}{
		"question":   text,
		"options":    []string{"True", "False"},
		"answer":     answer,
		"type":       "TF",
		"difficulty": difficulty,
	}
}

// createBank creates a question bank for the env's module through the API
func (e *testEnv) createBank(t *testing.T, questions ...map[string]interface{}) {
	t.Helper()

	status, _ := e.doRequest(t, http.MethodPost, "/question-bank/add", e.instructorToken, map[string]interface{}{
		"module_id": e.module.ID,
		"questions": questions,
	})
	require.Equal(t, http.StatusCreated, status)
}

// bankQuestions fetches the current bank questions through the API
func (e *testEnv) bankQuestions(t *testing.T) []map[string]interface{} {
	t.Helper()

	status, envelope := e.doRequest(t, http.MethodGet, fmt.Sprintf("/question-bank/%d", e.module.ID), e.instructorToken, nil)
	require.Equal(t, http.StatusOK, status)

	data := envelope["data"].(map[string]interface{})
	raw := data["questions"].([]interface{})

	questions := make([]map[string]interface{}, len(raw))
	for i, q := range raw {
		questions[i] = q.(map[string]interface{})
	}
	return questions
}

// createQuiz creates a quiz for the env's module through the API and
// returns its generated quiz id
func (e *testEnv) createQuiz(t *testing.T, count int, questionType, difficulty string) string {
	t.Helper()

	status, envelope := e.doRequest(t, http.MethodPost, fmt.Sprintf("/quiz/create/%d", e.module.ID), e.instructorToken, map[string]interface{}{
		"course_id":           e.course.ID,
		"number_of_questions": count,
		"question_type":       questionType,
		"difficulty":          difficulty,
	})
	require.Equal(t, http.StatusCreated, status)

	data := envelope["data"].(map[string]interface{})
	return data["quiz_id"].(string)
}

// quizQuestions fetches a quiz's frozen question list through the API
func (e *testEnv) quizQuestions(t *testing.T) []map[string]interface{} {
	t.Helper()

	status, envelope := e.doRequest(t, http.MethodGet, fmt.Sprintf("/quiz/module/%d", e.module.ID), e.instructorToken, nil)
	require.Equal(t, http.StatusOK, status)

	data := envelope["data"].(map[string]interface{})
	raw := data["questions"].([]interface{})

	questions := make([]map[string]interface{}, len(raw))
	for i, q := range raw {
		questions[i] = q.(map[string]interface{})
	}
	return questions
}
