package controller

import (
	"github.com/gofiber/fiber/v2"

	"sales-assistant-be/internal/dto"
	"sales-assistant-be/internal/pkg/serverutils"
	"sales-assistant-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	Refresh(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService      service.IChatService
	knowledgeService service.IKnowledgeService
}

func NewChatController(chatService service.IChatService, knowledgeService service.IKnowledgeService) IChatController {
	return &chatController{
		chatService:      chatService,
		knowledgeService: knowledgeService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("message", c.SendMessage)
	h.Post("refresh", c.Refresh)
	h.Get("health", c.Health)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.chatService.SendMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *chatController) Refresh(ctx *fiber.Ctx) error {
	stored, err := c.knowledgeService.Refresh(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success refresh knowledge base", dto.RefreshKnowledgeResponse{
		ChunksStored: stored,
	}))
}

func (c *chatController) Health(ctx *fiber.Ctx) error {
	res, err := c.chatService.Health(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success check health", res))
}
