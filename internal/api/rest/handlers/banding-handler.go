package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/helper/utils"
	"github.com/lspdigital/sertifikasi_service/internal/services"
)

// BandingHandler covers both appeal (banding) and complaint (pengaduan)
// intake. Submissions come in over the public group, processing is admin-only.
type BandingHandler struct {
	svc services.BandingService
}

func NewBandingHandler(svc services.BandingService) *BandingHandler {
	return &BandingHandler{svc: svc}
}

func (h *BandingHandler) SetupRoutes(public fiber.Router, admin fiber.Router) {
	public.Post("/banding", h.SubmitBanding)
	public.Post("/pengaduan", h.SubmitPengaduan)

	admin.Get("/banding", h.ListBanding)
	admin.Put("/banding/:id", h.UpdateBanding)
	admin.Get("/pengaduan", h.ListPengaduan)
	admin.Put("/pengaduan/:id", h.UpdatePengaduan)
}

func (h *BandingHandler) SubmitBanding(ctx *fiber.Ctx) error {
	var requestBody dto.BandingRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	b, err := h.svc.SubmitBanding(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, b)
}

func (h *BandingHandler) ListBanding(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	rows, err := h.svc.ListBanding(limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rows)
}

func (h *BandingHandler) UpdateBanding(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var requestBody dto.BandingUpdateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	b, err := h.svc.UpdateBanding(id, requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, b)
}

func (h *BandingHandler) SubmitPengaduan(ctx *fiber.Ctx) error {
	var requestBody dto.PengaduanRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	p, err := h.svc.SubmitPengaduan(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, p)
}

func (h *BandingHandler) ListPengaduan(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	rows, err := h.svc.ListPengaduan(limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rows)
}

func (h *BandingHandler) UpdatePengaduan(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var requestBody dto.PengaduanUpdateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	p, err := h.svc.UpdatePengaduan(id, requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, p)
}
