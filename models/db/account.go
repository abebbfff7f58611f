package dbmodels

import (
	"fmt"
	"time"

	"jobportal-backend/models"
)

type Account struct {
	BaseModel
	Email      string          `gorm:"type:varchar(255);uniqueIndex"`
	Password   string          `gorm:"type:varchar(128)"`
	FirstName  string          `gorm:"type:varchar(100)"`
	MiddleName string          `gorm:"type:varchar(100)"`
	LastName   string          `gorm:"type:varchar(100)"`
	Phone      string          `gorm:"type:varchar(30)"`
	Role       models.UserRole `gorm:"type:varchar(50)"`
	IsActive   bool            `gorm:"default:true"`
	LastLogin  *time.Time
}

func (a Account) GetFullName() string {
	if a.MiddleName != "" {
		return fmt.Sprintf("%s %s %s", a.FirstName, a.MiddleName, a.LastName)
	}
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}
