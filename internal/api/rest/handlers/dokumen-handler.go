package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lspdigital/sertifikasi_service/internal/helper/utils"
	"github.com/lspdigital/sertifikasi_service/internal/services"
	pkgutils "github.com/lspdigital/sertifikasi_service/pkg/utils"
)

// uploads above this size are rejected before hitting the uploader
const maxDokumenSize = 20 << 20

type DokumenHandler struct {
	svc services.DokumenService
}

func NewDokumenHandler(svc services.DokumenService) *DokumenHandler {
	return &DokumenHandler{svc: svc}
}

func (h *DokumenHandler) SetupRoutes(admin fiber.Router) {
	admin.Get("/dokumen-mutu", h.List)
	admin.Get("/dokumen-mutu/:id", h.Get)
	admin.Post("/dokumen-mutu", h.Upload)
	admin.Delete("/dokumen-mutu/:id", h.Delete)
}

func (h *DokumenHandler) List(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	rows, err := h.svc.List(limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rows)
}

func (h *DokumenHandler) Get(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	d, err := h.svc.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, d)
}

func (h *DokumenHandler) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "unable to read uploaded file")
	}
	defer file.Close()

	content, err := pkgutils.ReadAllLimit(file, maxDokumenSize)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	d, err := h.svc.Upload(ctx.Context(),
		ctx.FormValue("nama_dokumen"),
		ctx.FormValue("nomor_dokumen"),
		ctx.FormValue("kategori"),
		content,
	)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, d)
}

func (h *DokumenHandler) Delete(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}
	if err := h.svc.Delete(id); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"deleted": id})
}
