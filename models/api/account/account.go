package accountapimodels

import (
	"jobportal-backend/models"
	dbmodels "jobportal-backend/models/db"
)

type AccountView struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	FullName string          `json:"full_name"`
	Phone    string          `json:"phone"`
	Role     models.UserRole `json:"role"`
	RoleName string          `json:"role_name"`
	IsActive bool            `json:"is_active"`
}

func Convert(rec dbmodels.Account) AccountView {
	return AccountView{
		ID:       rec.ID,
		Email:    rec.Email,
		FullName: rec.GetFullName(),
		Phone:    rec.Phone,
		Role:     rec.Role,
		RoleName: rec.Role.ToHuman(),
		IsActive: rec.IsActive,
	}
}
