package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/helper"
	"github.com/lspdigital/sertifikasi_service/internal/helper/utils"
	"github.com/lspdigital/sertifikasi_service/internal/services"
)

type AuthHandler struct {
	svc  services.AuthService
	auth helper.Auth
}

func NewAuthHandler(svc services.AuthService, auth helper.Auth) *AuthHandler {
	return &AuthHandler{svc: svc, auth: auth}
}

func (h *AuthHandler) SetupRoutes(public, protected fiber.Router) {
	public.Post("/auth/login", h.Login)
	protected.Get("/user/me", h.Me)
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.LoginRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	user, token, err := h.svc.Login(requestBody.Email, requestBody.Password)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "invalid email or password")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Me(ctx *fiber.Ctx) error {
	principal, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := h.svc.GetUser(principal.UserID)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}
