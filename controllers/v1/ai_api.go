package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"jobportal-backend/controllers"
	aihandler "jobportal-backend/lib/ai"
	"jobportal-backend/middleware"
	apimodels "jobportal-backend/models/api"
	aiapimodels "jobportal-backend/models/api/ai"
)

type aiApiController struct {
	controllers.BaseAPIController
}

func InitAiApiRouters(app *fiber.App) {
	controller := aiApiController{}
	app.Route("ai", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Post("assist", controller.assist)
	})
}

// @Summary Assistant
// @Tags AI assistant
// @Description Generate an answer for the given purpose and context
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 aiapimodels.AssistRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=aiapimodels.AssistResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ai/assist [post]
func (c *aiApiController) assist(ctx *fiber.Ctx) error {
	var payload aiapimodels.AssistRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := aihandler.Instance.Assist(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to generate the answer")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
