package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuestionBank(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.doRequest(t, http.MethodPost, "/question-bank/add", env.instructorToken, map[string]interface{}{
		"module_id": env.module.ID,
		"questions": []map[string]interface{}{
			mcq("What is a slice?", "easy", "A view over an array", "A linked list", "A map"),
			tf("Maps are ordered.", "False", "easy"),
		},
	})
	require.Equal(t, http.StatusCreated, status)

	questions := env.bankQuestions(t)
	require.Len(t, questions, 2)
	assert.Equal(t, "What is a slice?", questions[0]["question"])
	assert.NotEmpty(t, questions[0]["question_id"])
	assert.NotEmpty(t, questions[1]["question_id"])
	assert.NotEqual(t, questions[0]["question_id"], questions[1]["question_id"])
}

func TestCreateQuestionBankDuplicate(t *testing.T) {
	env := newTestEnv(t)
	env.createBank(t, mcq("Q1?", "easy", "A", "B"))

	status, _ := env.doRequest(t, http.MethodPost, "/question-bank/add", env.instructorToken, map[string]interface{}{
		"module_id": env.module.ID,
		"questions": []map[string]interface{}{mcq("Q2?", "easy", "A", "B")},
	})
	assert.Equal(t, http.StatusConflict, status)
}

func TestCreateQuestionBankModuleMissing(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.doRequest(t, http.MethodPost, "/question-bank/add", env.instructorToken, map[string]interface{}{
		"module_id": 9999,
		"questions": []map[string]interface{}{mcq("Q1?", "easy", "A", "B")},
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreateQuestionBankValidation(t *testing.T) {
	env := newTestEnv(t)

	// Missing difficulty
	status, _ := env.doRequest(t, http.MethodPost, "/question-bank/add", env.instructorToken, map[string]interface{}{
		"module_id": env.module.ID,
		"questions": []map[string]interface{}{
			{"question": "Q1?", "options": []string{"A", "B"}, "answer": "A", "type": "MCQ"},
		},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	// MCQ answer not among options
	status, _ = env.doRequest(t, http.MethodPost, "/question-bank/add", env.instructorToken, map[string]interface{}{
		"module_id": env.module.ID,
		"questions": []map[string]interface{}{
			{"question": "Q1?", "options": []string{"A", "B"}, "answer": "C", "type": "MCQ", "difficulty": "easy"},
		},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestCreateQuestionBankRequiresInstructor(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.doRequest(t, http.MethodPost, "/question-bank/add", env.studentToken, map[string]interface{}{
		"module_id": env.module.ID,
		"questions": []map[string]interface{}{mcq("Q1?", "easy", "A", "B")},
	})
	assert.Equal(t, http.StatusForbidden, status)
}

func TestGetQuestionBankMissing(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.doRequest(t, http.MethodGet, fmt.Sprintf("/question-bank/%d", env.module.ID), env.instructorToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAppendQuestions(t *testing.T) {
	env := newTestEnv(t)
	env.createBank(t, mcq("Q1?", "easy", "A", "B"))

	status, _ := env.doRequest(t, http.MethodPatch, fmt.Sprintf("/question-bank/%d/questions", env.module.ID), env.instructorToken, map[string]interface{}{
		"questions": []map[string]interface{}{
			mcq("Q2?", "medium", "C", "D"),
			tf("Q3?", "True", "hard"),
		},
	})
	require.Equal(t, http.StatusOK, status)

	// Appended in input order
	questions := env.bankQuestions(t)
	require.Len(t, questions, 3)
	assert.Equal(t, "Q1?", questions[0]["question"])
	assert.Equal(t, "Q2?", questions[1]["question"])
	assert.Equal(t, "Q3?", questions[2]["question"])
}

func TestAppendQuestionsMissingDifficulty(t *testing.T) {
	env := newTestEnv(t)
	env.createBank(t, mcq("Q1?", "easy", "A", "B"))

	status, _ := env.doRequest(t, http.MethodPatch, fmt.Sprintf("/question-bank/%d/questions", env.module.ID), env.instructorToken, map[string]interface{}{
		"questions": []map[string]interface{}{
			{"question": "Q2?", "options": []string{"A", "B"}, "answer": "A", "type": "MCQ"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAppendQuestionsBankMissing(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.doRequest(t, http.MethodPatch, fmt.Sprintf("/question-bank/%d/questions", env.module.ID), env.instructorToken, map[string]interface{}{
		"questions": []map[string]interface{}{mcq("Q1?", "easy", "A", "B")},
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestEditQuestionMergesSuppliedFields(t *testing.T) {
	env := newTestEnv(t)
	env.createBank(t,
		mcq("Q1?", "easy", "A", "B"),
		mcq("Q2?", "easy", "C", "D"),
	)

	status, _ := env.doRequest(t, http.MethodPatch, fmt.Sprintf("/question-bank/%d/question/1", env.module.ID), env.instructorToken, map[string]interface{}{
		"difficulty": "hard",
	})
	require.Equal(t, http.StatusOK, status)

	questions := env.bankQuestions(t)
	// Only the supplied field changed; everything else is untouched
	assert.Equal(t, "Q2?", questions[1]["question"])
	assert.Equal(t, "C", questions[1]["answer"])
	assert.Equal(t, "hard", questions[1]["difficulty"])
	assert.Equal(t, "easy", questions[0]["difficulty"])
}

func TestEditQuestionIndexOutOfBounds(t *testing.T) {
	env := newTestEnv(t)
	env.createBank(t, mcq("Q1?", "easy", "A", "B"))

	status, _ := env.doRequest(t, http.MethodPatch, fmt.Sprintf("/question-bank/%d/question/5", env.module.ID), env.instructorToken, map[string]interface{}{
		"difficulty": "hard",
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDeleteQuestionShiftsIndices(t *testing.T) {
	env := newTestEnv(t)
	env.createBank(t,
		mcq("Q1?", "easy", "A", "B"),
		mcq("Q2?", "easy", "C", "D"),
		mcq("Q3?", "easy", "E", "F"),
	)

	status, _ := env.doRequest(t, http.MethodDelete, fmt.Sprintf("/question-bank/%d/question/1", env.module.ID), env.instructorToken, nil)
	require.Equal(t, http.StatusOK, status)

	questions := env.bankQuestions(t)
	require.Len(t, questions, 2)
	assert.Equal(t, "Q1?", questions[0]["question"])
	assert.Equal(t, "Q3?", questions[1]["question"])
}

func TestDeleteQuestionIndexOutOfBounds(t *testing.T) {
	env := newTestEnv(t)
	env.createBank(t, mcq("Q1?", "easy", "A", "B"))

	status, _ := env.doRequest(t, http.MethodDelete, fmt.Sprintf("/question-bank/%d/question/3", env.module.ID), env.instructorToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
