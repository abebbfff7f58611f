package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "jobportal-backend/lib/utils/auth-utils"
	"jobportal-backend/models"
	apimodels "jobportal-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		if stringName, ok := name.(string); ok {
			return stringName
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func ApplicantRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.UserRoleApplicant {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not available"))
		}
		return ctx.Next()
	}
}

func StaffRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsStaff() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not available"))
		}
		return ctx.Next()
	}
}

func ReviewerRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.UserRoleReviewer {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not available"))
		}
		return ctx.Next()
	}
}

func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.UserRoleAdmin {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not available"))
		}
		return ctx.Next()
	}
}
