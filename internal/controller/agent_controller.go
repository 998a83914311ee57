package controller

import (
	"helpdesk-chatbot-be/internal/dto"
	"helpdesk-chatbot-be/internal/entity"
	"helpdesk-chatbot-be/internal/pkg/serverutils"
	"helpdesk-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router, jwt fiber.Handler)
	ListSessions(ctx *fiber.Ctx) error
	GetSessionMessages(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	CloseSession(ctx *fiber.Ctx) error
}

type agentController struct {
	agentService service.IAgentService
}

func NewAgentController(agentService service.IAgentService) IAgentController {
	return &agentController{
		agentService: agentService,
	}
}

func (c *agentController) RegisterRoutes(r fiber.Router, jwt fiber.Handler) {
	h := r.Group("/agent/v1")
	h.Use(jwt)
	h.Use(serverutils.RequireRole(string(entity.UserRoleAgent), string(entity.UserRoleAdmin)))
	h.Get("sessions", c.ListSessions)
	h.Get("session/:id/messages", c.GetSessionMessages)
	h.Post("message", c.SendMessage)
	h.Post("session/:id/close", c.CloseSession)
}

func (c *agentController) ListSessions(ctx *fiber.Ctx) error {
	res, err := c.agentService.ListEscalatedSessions(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list escalated sessions", res))
}

func (c *agentController) GetSessionMessages(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid session id"})
	}

	res, err := c.agentService.GetSessionMessages(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get session messages", res))
}

func (c *agentController) SendMessage(ctx *fiber.Ctx) error {
	agentIdStr := ctx.Locals("user_id").(string)
	agentId, _ := uuid.Parse(agentIdStr)

	var req dto.SendAgentMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.agentService.SendAgentMessage(ctx.Context(), agentId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success send agent message", res))
}

func (c *agentController) CloseSession(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid session id"})
	}

	if err := c.agentService.CloseSession(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success close session", nil))
}
