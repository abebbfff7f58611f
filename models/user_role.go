package models

type UserRole string

const (
	UserRoleApplicant UserRole = "APPLICANT_ROLE"
	UserRoleHR        UserRole = "HR_ROLE"
	UserRoleReviewer  UserRole = "REVIEWER_ROLE"
	UserRoleAdmin     UserRole = "ADMIN_ROLE"
)

var roleHumanName = map[UserRole]string{
	UserRoleApplicant: "Applicant",
	UserRoleHR:        "HR Staff",
	UserRoleReviewer:  "Reviewer",
	UserRoleAdmin:     "Administrator",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsStaff() bool {
	return r == UserRoleHR || r == UserRoleAdmin
}

const SystemUser = "System"
