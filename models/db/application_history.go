package dbmodels

import (
	"jobportal-backend/models"
)

// ApplicationStatusHistory is append-only, one row per transition. OldStatus
// is nil on the first row and is always taken from the application row while
// it is locked, so consecutive rows form a chain.
type ApplicationStatusHistory struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);index"`
	OldStatus     *models.ApplicationStatus `gorm:"type:varchar(50)"`
	NewStatus     models.ApplicationStatus  `gorm:"type:varchar(50)"`
	ChangedByID   string                    `gorm:"type:varchar(36)"`
	ChangedByName string                    `gorm:"type:varchar(255)"`
	Remarks       string
}
