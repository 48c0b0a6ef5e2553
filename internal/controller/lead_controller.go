package controller

import (
	"github.com/gofiber/fiber/v2"

	"sales-assistant-be/internal/dto"
	"sales-assistant-be/internal/pkg/serverutils"
	"sales-assistant-be/internal/service"
)

type ILeadController interface {
	RegisterRoutes(r fiber.Router)
	SubmitDemo(ctx *fiber.Ctx) error
}

type leadController struct {
	leadService service.ILeadService
}

func NewLeadController(leadService service.ILeadService) ILeadController {
	return &leadController{
		leadService: leadService,
	}
}

func (c *leadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/lead/v1")
	h.Post("demo", c.SubmitDemo)
}

func (c *leadController) SubmitDemo(ctx *fiber.Ctx) error {
	var req dto.SubmitDemoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.leadService.SubmitDemo(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit demo request", res))
}
