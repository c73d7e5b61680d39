package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/helper/utils"
	"github.com/lspdigital/sertifikasi_service/internal/services"
)

type TUKHandler struct {
	svc services.TUKService
}

func NewTUKHandler(svc services.TUKService) *TUKHandler {
	return &TUKHandler{svc: svc}
}

func (h *TUKHandler) SetupRoutes(admin fiber.Router) {
	admin.Get("/tuk", h.List)
	admin.Get("/tuk/:id", h.Get)
	admin.Post("/tuk", h.Create)
	admin.Post("/tuk-akun", h.CreateWithAccount)
	admin.Post("/import-tuk", h.Import)
	admin.Put("/tuk/:id", h.Update)
	admin.Delete("/tuk/:id", h.Delete)
}

func (h *TUKHandler) List(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	rows, err := h.svc.List(limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rows)
}

func (h *TUKHandler) Get(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	t, err := h.svc.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, t)
}

func (h *TUKHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.TUKRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	t, err := h.svc.Create(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, t)
}

func (h *TUKHandler) CreateWithAccount(ctx *fiber.Ctx) error {
	var requestBody dto.TUKAkunRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	t, err := h.svc.CreateWithAccount(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, t)
}

func (h *TUKHandler) Import(ctx *fiber.Ctx) error {
	var requestBody dto.TUKImportRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	count, err := h.svc.Import(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, fiber.Map{"imported": count})
}

func (h *TUKHandler) Update(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var requestBody dto.TUKRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	t, err := h.svc.Update(id, requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, t)
}

func (h *TUKHandler) Delete(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	if err := h.svc.Delete(id); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"deleted": id})
}
