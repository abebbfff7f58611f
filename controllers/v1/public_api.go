package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"jobportal-backend/controllers"
	vacancyhandler "jobportal-backend/lib/vacancy"
	apimodels "jobportal-backend/models/api"
)

type publicApiController struct {
	controllers.BaseAPIController
}

func InitPublicApiRouters(app *fiber.App) {
	controller := publicApiController{}
	app.Route("public", func(router fiber.Router) {
		router.Route("vacancy", func(vacancyRoute fiber.Router) {
			vacancyRoute.Get("list", controller.list)
			vacancyRoute.Get(":id", controller.get)
		})
	})
}

// @Summary Open vacancy list
// @Tags Public vacancies
// @Description Published vacancies accepting applications
// @Success 200 {object} apimodels.Response{data=[]vacancyapimodels.VacancyView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/vacancy/list [get]
func (c *publicApiController) list(ctx *fiber.Ctx) error {
	list, err := vacancyhandler.Instance.PublicList()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list open vacancies")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Open vacancy
// @Tags Public vacancies
// @Description Published vacancy by id
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/vacancy/{id} [get]
func (c *publicApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := vacancyhandler.Instance.PublicGetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}
