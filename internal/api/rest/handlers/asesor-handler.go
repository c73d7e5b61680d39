package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/helper/utils"
	"github.com/lspdigital/sertifikasi_service/internal/services"
)

type AsesorHandler struct {
	svc services.AsesorService
}

func NewAsesorHandler(svc services.AsesorService) *AsesorHandler {
	return &AsesorHandler{svc: svc}
}

func (h *AsesorHandler) SetupRoutes(admin fiber.Router) {
	admin.Get("/asesor", h.List)
	admin.Get("/asesor/:id", h.Get)
	admin.Post("/asesor", h.Create)
	admin.Post("/asesor/import", h.Import)
	admin.Put("/asesor/:id", h.Update)
	admin.Delete("/asesor/:id", h.Delete)
}

func (h *AsesorHandler) List(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	rows, err := h.svc.List(limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rows)
}

func (h *AsesorHandler) Get(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	a, err := h.svc.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, a)
}

func (h *AsesorHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.AsesorRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	a, err := h.svc.Create(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, a)
}

func (h *AsesorHandler) Import(ctx *fiber.Ctx) error {
	var requestBody dto.AsesorImportRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	count, err := h.svc.Import(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, fiber.Map{"imported": count})
}

func (h *AsesorHandler) Update(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var requestBody dto.AsesorRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	a, err := h.svc.Update(id, requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, a)
}

func (h *AsesorHandler) Delete(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	if err := h.svc.Delete(id); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"deleted": id})
}
