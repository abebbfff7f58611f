package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"jobportal-backend/controllers"
	applicationhandler "jobportal-backend/lib/application"
	documenthandler "jobportal-backend/lib/document"
	"jobportal-backend/middleware"
	"jobportal-backend/models"
	apimodels "jobportal-backend/models/api"
	applicationapimodels "jobportal-backend/models/api/application"
)

type applicantApiController struct {
	controllers.BaseAPIController
}

func InitApplicantApiRouters(app *fiber.App) {
	controller := applicantApiController{}
	app.Route("applicant", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.ApplicantRequired())

		router.Route("document", func(documentRoute fiber.Router) {
			documentRoute.Post("", controller.uploadDocument)
			documentRoute.Get("list", controller.documentList)
			documentRoute.Route(":id", func(idRoute fiber.Router) {
				idRoute.Get("", controller.downloadDocument)
				idRoute.Delete("", controller.deleteDocument)
			})
		})
		router.Route("application", func(applicationRoute fiber.Router) {
			applicationRoute.Post("completeness", controller.completeness)
			applicationRoute.Post("", controller.submit)
			applicationRoute.Get("list", controller.myApplications)
			applicationRoute.Route(":id", func(idRoute fiber.Router) {
				idRoute.Get("", controller.getApplication)
				idRoute.Get("history", controller.history)
				idRoute.Get("confirmation", controller.confirmationSlip)
			})
		})
	})
}

// @Summary Upload a document
// @Tags Applicant documents
// @Description Upload a document
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   document_type		formData	string	true 	"document type tag"
// @Param   file				formData	file 	true 	"document file"
// @Success 200 {object} apimodels.Response{data=documentapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/document [post]
func (c *applicantApiController) uploadDocument(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	docType := models.DocumentType(ctx.FormValue("document_type"))
	if err := docType.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to open the uploaded file")
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to read the uploaded file")
	}

	contentType := file.Header.Get(fiber.HeaderContentType)
	view, err := documenthandler.Instance.Upload(ctx.UserContext(), userID, docType, file.Filename, contentType, fileBody)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to save the document")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Document list
// @Tags Applicant documents
// @Description The applicant's uploaded documents
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]documentapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/document/list [get]
func (c *applicantApiController) documentList(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	list, err := documenthandler.Instance.List(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list documents")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Download a document
// @Tags Applicant documents
// @Description Download a document
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/document/{id} [get]
func (c *applicantApiController) downloadDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	fileName, body, err := documenthandler.Instance.Download(ctx.UserContext(), userID, id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(body)
}

// @Summary Delete a document
// @Tags Applicant documents
// @Description Delete a document
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/document/{id} [delete]
func (c *applicantApiController) deleteDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = documenthandler.Instance.Delete(ctx.UserContext(), userID, id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Completeness check
// @Tags Applicant applications
// @Description Completeness of the selected documents against the vacancy requirements
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.CompletenessView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/application/completeness [post]
func (c *applicantApiController) completeness(ctx *fiber.Ctx) error {
	var payload applicationapimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	result, err := applicationhandler.Instance.Completeness(userID, payload.VacancyID, payload.DocumentIDs)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Submit an application
// @Tags Applicant applications
// @Description Submit an application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.SubmitResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/application [post]
func (c *applicantApiController) submit(ctx *fiber.Ctx) error {
	var payload applicationapimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	result, err := applicationhandler.Instance.Submit(userID, payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary My applications
// @Tags Applicant applications
// @Description The applicant's applications
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/application/list [get]
func (c *applicantApiController) myApplications(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	list, err := applicationhandler.Instance.ListMy(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary My application
// @Tags Applicant applications
// @Description The applicant's application by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/application/{id} [get]
func (c *applicantApiController) getApplication(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	view, err := applicationhandler.Instance.GetOwn(userID, id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Status history
// @Tags Applicant applications
// @Description Status history of the applicant's application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.HistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/application/{id}/history [get]
func (c *applicantApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if _, err = applicationhandler.Instance.GetOwn(userID, id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := applicationhandler.Instance.History(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list status history")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Confirmation slip
// @Tags Applicant applications
// @Description Submission confirmation slip as a PDF file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/application/{id}/confirmation [get]
func (c *applicantApiController) confirmationSlip(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	body, err := applicationhandler.Instance.ConfirmationSlip(userID, id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="confirmation.pdf"`)
	return ctx.Send(body)
}
