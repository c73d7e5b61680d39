package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/helper/utils"
)

// respondError maps the domain error taxonomy onto HTTP statuses. Anything
// not in the taxonomy is an infrastructure error and comes back as a 500
// without masking.
func respondError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidStateTransition):
		return utils.ResponseError(ctx, fiber.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrDuplicateIdentity):
		return utils.ResponseError(ctx, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrValidation):
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	default:
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
}

func paramID(ctx *fiber.Ctx, name string) (uint, error) {
	raw := ctx.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, domain.ErrNotFound
	}
	return uint(id), nil
}

func pagination(ctx *fiber.Ctx) (limit, offset int) {
	limit = ctx.QueryInt("limit", 100)
	offset = ctx.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
