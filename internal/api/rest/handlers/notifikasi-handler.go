package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/helper/utils"
	"github.com/lspdigital/sertifikasi_service/internal/services"
)

type NotifikasiHandler struct {
	svc services.NotifikasiService
}

func NewNotifikasiHandler(svc services.NotifikasiService) *NotifikasiHandler {
	return &NotifikasiHandler{svc: svc}
}

func (h *NotifikasiHandler) SetupRoutes(admin fiber.Router) {
	admin.Get("/notifikasi", h.List)
	admin.Post("/notifikasi", h.Create)
	admin.Put("/notifikasi/:id/read", h.MarkRead)
	admin.Delete("/notifikasi/:id", h.Delete)
}

func (h *NotifikasiHandler) List(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	rows, err := h.svc.List(limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rows)
}

func (h *NotifikasiHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.NotifikasiRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	n, err := h.svc.Create(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, n)
}

func (h *NotifikasiHandler) MarkRead(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	if err := h.svc.MarkRead(id); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"read": id})
}

func (h *NotifikasiHandler) Delete(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	if err := h.svc.Delete(id); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"deleted": id})
}
