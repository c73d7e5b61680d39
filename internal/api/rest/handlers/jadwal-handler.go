package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/helper/utils"
	"github.com/lspdigital/sertifikasi_service/internal/services"
)

type JadwalHandler struct {
	svc services.JadwalService
}

func NewJadwalHandler(svc services.JadwalService) *JadwalHandler {
	return &JadwalHandler{svc: svc}
}

func (h *JadwalHandler) SetupRoutes(admin fiber.Router) {
	admin.Get("/jadwal/uji-kompetensi", h.List)
	admin.Get("/jadwal/uji-kompetensi/export", h.Export)
	admin.Get("/jadwal/uji-kompetensi/:id", h.Get)
	admin.Post("/jadwal/uji-kompetensi", h.Create)
	admin.Put("/jadwal/uji-kompetensi/:id", h.Update)
	admin.Delete("/jadwal/uji-kompetensi/:id", h.Delete)
}

func (h *JadwalHandler) List(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	rows, err := h.svc.List(limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rows)
}

func (h *JadwalHandler) Export(ctx *fiber.Ctx) error {
	data, err := h.svc.ExportCSV()
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="jadwal-uji-kompetensi.csv"`)
	return ctx.Status(fiber.StatusOK).Send(data)
}

func (h *JadwalHandler) Get(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	j, err := h.svc.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, j)
}

func (h *JadwalHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.JadwalUjiRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	j, err := h.svc.Create(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, j)
}

func (h *JadwalHandler) Update(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var requestBody dto.JadwalUjiRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	j, err := h.svc.Update(id, requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, j)
}

func (h *JadwalHandler) Delete(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	if err := h.svc.Delete(id); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"deleted": id})
}
