package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lspdigital/sertifikasi_service/internal/helper/utils"
	"github.com/lspdigital/sertifikasi_service/internal/services"
)

// WilayahHandler proxies the public administrative-region lookups that the
// registration form cascades through. No auth: the form is public.
type WilayahHandler struct {
	svc services.WilayahService
}

func NewWilayahHandler(svc services.WilayahService) *WilayahHandler {
	return &WilayahHandler{svc: svc}
}

func (h *WilayahHandler) SetupRoutes(public fiber.Router) {
	public.Get("/wilayah/provinces", h.Provinces)
	public.Get("/wilayah/regencies/:provinceId", h.Regencies)
	public.Get("/wilayah/districts/:regencyId", h.Districts)
	public.Get("/wilayah/villages/:districtId", h.Villages)
}

func (h *WilayahHandler) Provinces(ctx *fiber.Ctx) error {
	rows, err := h.svc.Provinces(ctx.Context())
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rows)
}

func (h *WilayahHandler) Regencies(ctx *fiber.Ctx) error {
	rows, err := h.svc.Regencies(ctx.Context(), ctx.Params("provinceId"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rows)
}

func (h *WilayahHandler) Districts(ctx *fiber.Ctx) error {
	rows, err := h.svc.Districts(ctx.Context(), ctx.Params("regencyId"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rows)
}

func (h *WilayahHandler) Villages(ctx *fiber.Ctx) error {
	rows, err := h.svc.Villages(ctx.Context(), ctx.Params("districtId"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rows)
}
