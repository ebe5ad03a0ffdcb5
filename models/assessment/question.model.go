package assessment

// Question types
const (
	TypeMCQ       = "MCQ"
	TypeTrueFalse = "TF"
	TypeBoth      = "Both"
)

// Difficulty levels
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyMixed  = "mixed"
)

// Question is embedded inside a question bank or quiz as JSON. It is never
// a table of its own. QuestionID is generated when the question enters a
// bank and stays stable through quiz generation, attempts and grading.
type Question struct {
	QuestionID string   `json:"question_id"`
	Question   string   `json:"question"`
	Options    []string `json:"options"` // empty for free-form types
	Answer     string   `json:"answer"`
	Type       string   `json:"type"`       // MCQ, TF
	Difficulty string   `json:"difficulty"` // easy, medium, hard
}
