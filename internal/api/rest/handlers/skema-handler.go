package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/helper/utils"
	"github.com/lspdigital/sertifikasi_service/internal/services"
)

// SkemaHandler serves the three related master-data screens: SKKNI, unit
// kompetensi and skema.
type SkemaHandler struct {
	svc services.SkemaService
}

func NewSkemaHandler(svc services.SkemaService) *SkemaHandler {
	return &SkemaHandler{svc: svc}
}

func (h *SkemaHandler) SetupRoutes(admin fiber.Router) {
	admin.Get("/skkni", h.ListSKKNI)
	admin.Get("/skkni/:id", h.GetSKKNI)
	admin.Post("/skkni", h.CreateSKKNI)
	admin.Put("/skkni/:id", h.UpdateSKKNI)
	admin.Delete("/skkni/:id", h.DeleteSKKNI)

	admin.Get("/unit-kompetensi", h.ListUnits)
	admin.Post("/unit-kompetensi", h.CreateUnit)
	admin.Put("/unit-kompetensi/:id", h.UpdateUnit)
	admin.Delete("/unit-kompetensi/:id", h.DeleteUnit)

	admin.Get("/skema", h.ListSkema)
	admin.Get("/skema/export", h.ExportSkema)
	admin.Get("/skema/:id", h.GetSkema)
	admin.Post("/skema", h.CreateSkema)
	admin.Post("/skema/import", h.ImportSkema)
	admin.Put("/skema/:id", h.UpdateSkema)
	admin.Delete("/skema/:id", h.DeleteSkema)
}

/* ---------- SKKNI ---------- */

func (h *SkemaHandler) ListSKKNI(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	rows, err := h.svc.ListSKKNI(limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rows)
}

func (h *SkemaHandler) GetSKKNI(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	s, err := h.svc.GetSKKNI(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, s)
}

func (h *SkemaHandler) CreateSKKNI(ctx *fiber.Ctx) error {
	var requestBody dto.SKKNIRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	doc, err := h.svc.CreateSKKNI(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, doc)
}

func (h *SkemaHandler) UpdateSKKNI(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var requestBody dto.SKKNIRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	doc, err := h.svc.UpdateSKKNI(id, requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, doc)
}

func (h *SkemaHandler) DeleteSKKNI(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	if err := h.svc.DeleteSKKNI(id); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"deleted": id})
}

/* ---------- Unit Kompetensi ---------- */

func (h *SkemaHandler) ListUnits(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	rows, err := h.svc.ListUnits(limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rows)
}

func (h *SkemaHandler) CreateUnit(ctx *fiber.Ctx) error {
	var requestBody dto.UnitKompetensiRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	u, err := h.svc.CreateUnit(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, u)
}

func (h *SkemaHandler) UpdateUnit(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var requestBody dto.UnitKompetensiRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	u, err := h.svc.UpdateUnit(id, requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, u)
}

func (h *SkemaHandler) DeleteUnit(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	if err := h.svc.DeleteUnit(id); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"deleted": id})
}

/* ---------- Skema ---------- */

func (h *SkemaHandler) ListSkema(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	rows, err := h.svc.ListSkema(limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rows)
}

func (h *SkemaHandler) ExportSkema(ctx *fiber.Ctx) error {
	data, err := h.svc.ExportSkemaCSV()
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="skema.csv"`)
	return ctx.Status(fiber.StatusOK).Send(data)
}

func (h *SkemaHandler) GetSkema(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	s, err := h.svc.GetSkema(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, s)
}

func (h *SkemaHandler) CreateSkema(ctx *fiber.Ctx) error {
	var requestBody dto.SkemaRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	sk, err := h.svc.CreateSkema(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, sk)
}

func (h *SkemaHandler) ImportSkema(ctx *fiber.Ctx) error {
	var requestBody dto.SkemaImportRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	count, err := h.svc.ImportSkema(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, fiber.Map{"imported": count})
}

func (h *SkemaHandler) UpdateSkema(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var requestBody dto.SkemaRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	sk, err := h.svc.UpdateSkema(id, requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, sk)
}

func (h *SkemaHandler) DeleteSkema(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	if err := h.svc.DeleteSkema(id); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"deleted": id})
}
