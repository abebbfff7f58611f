package dbmodels

import (
	"jobportal-backend/models"
)

type AIRequestLog struct {
	BaseModel
	UserID   string               `gorm:"type:varchar(36);index"`
	Purpose  models.AssistPurpose `gorm:"type:varchar(50)"`
	Context  string
	Response string
	Success  bool
}
