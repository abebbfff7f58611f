package dbmodels

import (
	"jobportal-backend/models"
)

// Evaluation is one reviewer's scored assessment of one application, unique
// per (application, reviewer) and written with an atomic upsert.
type Evaluation struct {
	BaseModel
	ApplicationID  string `gorm:"type:varchar(36);uniqueIndex:idx_eval_app_reviewer"`
	Application    *Application
	ReviewerID     string   `gorm:"type:varchar(36);uniqueIndex:idx_eval_app_reviewer"`
	Reviewer       *Account `gorm:"foreignKey:ReviewerID"`
	Score          int
	Recommendation models.Recommendation `gorm:"type:varchar(50)"`
	Remarks        string
}
