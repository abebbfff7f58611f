package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"jobportal-backend/controllers"
	reviewhandler "jobportal-backend/lib/review"
	"jobportal-backend/middleware"
	apimodels "jobportal-backend/models/api"
	evaluationapimodels "jobportal-backend/models/api/evaluation"
)

type reviewApiController struct {
	controllers.BaseAPIController
}

func InitReviewApiRouters(app *fiber.App) {
	controller := reviewApiController{}
	app.Route("review", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.ReviewerRequired())

		router.Get("assigned", controller.assignedList)
		router.Route("application/:id/evaluation", func(idRoute fiber.Router) {
			idRoute.Put("", controller.evaluate)
			idRoute.Get("", controller.getEvaluation)
		})
	})
}

// @Summary Assigned applications
// @Tags Review
// @Description Applications assigned to the reviewer
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]evaluationapimodels.AssignmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/review/assigned [get]
func (c *reviewApiController) assignedList(ctx *fiber.Ctx) error {
	reviewerID := middleware.GetUserID(ctx)
	list, err := reviewhandler.Instance.AssignedList(reviewerID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list assigned applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Save an evaluation
// @Tags Review
// @Description Create or replace the reviewer's evaluation of an application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 evaluationapimodels.EvaluationData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/review/application/{id}/evaluation [put]
func (c *reviewApiController) evaluate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload evaluationapimodels.EvaluationData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	reviewerID := middleware.GetUserID(ctx)
	err = reviewhandler.Instance.Evaluate(id, reviewerID, payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary My evaluation
// @Tags Review
// @Description The reviewer's own evaluation of an application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.EvaluationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/review/application/{id}/evaluation [get]
func (c *reviewApiController) getEvaluation(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	reviewerID := middleware.GetUserID(ctx)
	view, err := reviewhandler.Instance.GetEvaluation(id, reviewerID)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
