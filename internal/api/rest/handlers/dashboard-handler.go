package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lspdigital/sertifikasi_service/internal/helper/utils"
	"github.com/lspdigital/sertifikasi_service/internal/repository"
)

// DashboardHandler is a thin aggregation endpoint; there is no business rule
// between the counts and the response, so it sits directly on the repository.
type DashboardHandler struct {
	repo repository.DashboardRepository
}

func NewDashboardHandler(repo repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

func (h *DashboardHandler) SetupRoutes(admin fiber.Router) {
	admin.Get("/dashboard", h.Counts)
}

func (h *DashboardHandler) Counts(ctx *fiber.Ctx) error {
	counts, err := h.repo.Counts()
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, counts)
}
