package assessment

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuestionBank is the authored pool of questions for one module.
// At most one bank exists per module.
type QuestionBank struct {
	gorm.Model
	ModuleID  uint                           `json:"module_id" gorm:"uniqueIndex;not null"`
	Questions datatypes.JSONType[[]Question] `json:"questions"`
	IsDeleted bool                           `gorm:"default:false"`
}
