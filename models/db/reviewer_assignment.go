package dbmodels

import "time"

// ReviewerAssignment designates a reviewer for an application. Duplicate
// assignment is meaningless, so the pair is unique.
type ReviewerAssignment struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);uniqueIndex:idx_app_reviewer"`
	Application   *Application
	ReviewerID    string   `gorm:"type:varchar(36);uniqueIndex:idx_app_reviewer"`
	Reviewer      *Account `gorm:"foreignKey:ReviewerID"`
	AssignedByID  string   `gorm:"type:varchar(36)"`
	AssignedAt    time.Time
}
