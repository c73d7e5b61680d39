package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/helper/utils"
	"github.com/lspdigital/sertifikasi_service/internal/services"
)

// InstrumenHandler serves the assessment instruments tied to a unit of
// competency: FR.IA.01 observation checklists and FR.IA.03 oral questions.
type InstrumenHandler struct {
	svc services.InstrumenService
}

func NewInstrumenHandler(svc services.InstrumenService) *InstrumenHandler {
	return &InstrumenHandler{svc: svc}
}

func (h *InstrumenHandler) SetupRoutes(admin fiber.Router) {
	admin.Get("/ia01-observasi/unit/:id", h.ListIA01)
	admin.Post("/ia01-observasi", h.CreateIA01)
	admin.Delete("/ia01-observasi/:id", h.DeleteIA01)

	admin.Get("/ia03-pertanyaan/unit/:id", h.ListIA03)
	admin.Post("/ia03-pertanyaan", h.CreateIA03)
	admin.Delete("/ia03-pertanyaan/:id", h.DeleteIA03)
}

func (h *InstrumenHandler) ListIA01(ctx *fiber.Ctx) error {
	unitID, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	rows, err := h.svc.ListIA01ByUnit(unitID)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rows)
}

func (h *InstrumenHandler) CreateIA01(ctx *fiber.Ctx) error {
	var requestBody dto.IA01ObservasiRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	row, err := h.svc.CreateIA01(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, row)
}

func (h *InstrumenHandler) DeleteIA01(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	if err := h.svc.DeleteIA01(id); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"deleted": id})
}

func (h *InstrumenHandler) ListIA03(ctx *fiber.Ctx) error {
	unitID, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	rows, err := h.svc.ListIA03ByUnit(unitID)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rows)
}

func (h *InstrumenHandler) CreateIA03(ctx *fiber.Ctx) error {
	var requestBody dto.IA03PertanyaanRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	row, err := h.svc.CreateIA03(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, row)
}

func (h *InstrumenHandler) DeleteIA03(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	if err := h.svc.DeleteIA03(id); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"deleted": id})
}
