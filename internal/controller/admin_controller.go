package controller

import (
	"helpdesk-chatbot-be/internal/dto"
	"helpdesk-chatbot-be/internal/entity"
	"helpdesk-chatbot-be/internal/pkg/logger"
	"helpdesk-chatbot-be/internal/pkg/serverutils"
	"helpdesk-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router, jwt fiber.Handler)
	GetAnalytics(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error

	ListKnowledge(ctx *fiber.Ctx) error
	CreateKnowledge(ctx *fiber.Ctx) error
	UpdateKnowledge(ctx *fiber.Ctx) error
	DeleteKnowledge(ctx *fiber.Ctx) error

	ListUsers(ctx *fiber.Ctx) error
	CreateUser(ctx *fiber.Ctx) error
	UpdateUser(ctx *fiber.Ctx) error
	DeleteUser(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService     service.IAdminService
	knowledgeService service.IKnowledgeService
	log              logger.ILogger
}

func NewAdminController(
	adminService service.IAdminService,
	knowledgeService service.IKnowledgeService,
	log logger.ILogger,
) IAdminController {
	return &adminController{
		adminService:     adminService,
		knowledgeService: knowledgeService,
		log:              log,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router, jwt fiber.Handler) {
	h := r.Group("/admin/v1")
	h.Use(jwt)
	h.Use(serverutils.RequireRole(string(entity.UserRoleAdmin)))

	h.Get("analytics", c.GetAnalytics)
	h.Get("logs", c.GetLogs)

	h.Get("knowledge", c.ListKnowledge)
	h.Post("knowledge", c.CreateKnowledge)
	h.Put("knowledge/:id", c.UpdateKnowledge)
	h.Delete("knowledge/:id", c.DeleteKnowledge)

	h.Get("users", c.ListUsers)
	h.Post("users", c.CreateUser)
	h.Put("users/:id", c.UpdateUser)
	h.Delete("users/:id", c.DeleteUser)
}

func (c *adminController) GetAnalytics(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetAnalytics(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get analytics", res))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	logs, err := c.log.GetLogs(level, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get logs", logs))
}

func (c *adminController) ListKnowledge(ctx *fiber.Ctx) error {
	res, err := c.knowledgeService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list knowledge", res))
}

func (c *adminController) CreateKnowledge(ctx *fiber.Ctx) error {
	var req dto.CreateKnowledgeEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.knowledgeService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create knowledge entry", res))
}

func (c *adminController) UpdateKnowledge(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid entry id"})
	}

	var req dto.UpdateKnowledgeEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.knowledgeService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update knowledge entry", res))
}

func (c *adminController) DeleteKnowledge(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid entry id"})
	}

	if err := c.knowledgeService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete knowledge entry", nil))
}

func (c *adminController) ListUsers(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListUsers(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list users", res))
}

func (c *adminController) CreateUser(ctx *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.CreateUser(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create user", res))
}

func (c *adminController) UpdateUser(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid user id"})
	}

	var req dto.UpdateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.UpdateUser(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update user", res))
}

func (c *adminController) DeleteUser(ctx *fiber.Ctx) error {
	adminIdStr := ctx.Locals("user_id").(string)
	adminId, _ := uuid.Parse(adminIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid user id"})
	}

	if err := c.adminService.DeleteUser(ctx.Context(), adminId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete user", nil))
}
