package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/helper/utils"
	"github.com/lspdigital/sertifikasi_service/internal/services"
)

type PendaftaranHandler struct {
	svc services.PendaftaranService
}

func NewPendaftaranHandler(svc services.PendaftaranService) *PendaftaranHandler {
	return &PendaftaranHandler{svc: svc}
}

func (h *PendaftaranHandler) SetupRoutes(public, admin fiber.Router) {
	// public submission form
	public.Post("/pendaftaran", h.Submit)

	// operator verification screen
	admin.Get("/pendaftaran", h.List)
	admin.Get("/pendaftaran/:id", h.Get)
	admin.Post("/pendaftaran/:id/approve", h.Approve)
	admin.Post("/pendaftaran/:id/reject", h.Reject)
}

func (h *PendaftaranHandler) Submit(ctx *fiber.Ctx) error {
	var requestBody dto.PendaftaranRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	p, err := h.svc.Submit(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, p)
}

func (h *PendaftaranHandler) List(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)

	rows, err := h.svc.List(ctx.Query("status"), limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rows)
}

func (h *PendaftaranHandler) Get(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	p, err := h.svc.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, p)
}

func (h *PendaftaranHandler) Approve(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	account, warning, err := h.svc.Approve(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccessWarn(ctx, fiber.StatusOK, account, warning)
}

func (h *PendaftaranHandler) Reject(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	p, warning, err := h.svc.Reject(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccessWarn(ctx, fiber.StatusOK, p, warning)
}
