package controller

import (
	"helpdesk-chatbot-be/internal/dto"
	"helpdesk-chatbot-be/internal/entity"
	"helpdesk-chatbot-be/internal/pkg/serverutils"
	"helpdesk-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router, jwt fiber.Handler)
	StartSession(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	SubmitFeedback(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router, jwt fiber.Handler) {
	h := r.Group("/chat/v1")
	h.Use(jwt)
	h.Use(serverutils.RequireRole(string(entity.UserRoleCustomer)))
	h.Post("session", c.StartSession)
	h.Post("message", c.SendMessage)
	h.Get("history/:token", c.GetHistory)
	h.Post("feedback", c.SubmitFeedback)
}

func (c *chatController) StartSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.chatService.StartSession(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success start session", res))
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendMessage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	token := ctx.Params("token")

	res, err := c.chatService.GetHistory(ctx.Context(), userId, token)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get history", res))
}

func (c *chatController) SubmitFeedback(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SubmitFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.chatService.SubmitFeedback(ctx.Context(), userId, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success submit feedback", nil))
}
