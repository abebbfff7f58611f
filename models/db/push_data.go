package dbmodels

import (
	"jobportal-backend/models"
)

// PushData parks notifications for users without an active websocket
// connection, flushed on reconnect.
type PushData struct {
	BaseModel
	UserID string          `gorm:"type:varchar(36);index"`
	Code   models.PushCode `gorm:"type:varchar(50)"`
	Msg    string
}
