package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPendaftaranService scripts the outcomes so the test pins down nothing
// but the HTTP mapping.
type stubPendaftaranService struct {
	submitErr  error
	approveErr error
	rejectErr  error
	warning    string
}

func (s *stubPendaftaranService) Submit(input dto.PendaftaranRequest) (*domain.Pendaftaran, error) {
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return &domain.Pendaftaran{ID: 1, NIK: input.NIK, Status: domain.RegistrationPending}, nil
}

func (s *stubPendaftaranService) List(status string, limit, offset int) ([]domain.Pendaftaran, error) {
	return []domain.Pendaftaran{}, nil
}

func (s *stubPendaftaranService) Get(id uint) (*domain.Pendaftaran, error) {
	return nil, domain.ErrNotFound
}

func (s *stubPendaftaranService) Approve(id uint) (*dto.ProvisionedAccount, string, error) {
	if s.approveErr != nil {
		return nil, "", s.approveErr
	}
	return &dto.ProvisionedAccount{UserID: 10, Email: "budi@example.com", Role: domain.RoleAsesi}, s.warning, nil
}

func (s *stubPendaftaranService) Reject(id uint) (*domain.Pendaftaran, string, error) {
	if s.rejectErr != nil {
		return nil, "", s.rejectErr
	}
	return &domain.Pendaftaran{ID: id, Status: domain.RegistrationRejected}, s.warning, nil
}

func newTestApp(svc *stubPendaftaranService) *fiber.App {
	app := fiber.New()
	public := app.Group("/api")
	admin := app.Group("/api/admin")
	NewPendaftaranHandler(svc).SetupRoutes(public, admin)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

func TestSubmitReturns201(t *testing.T) {
	app := newTestApp(&stubPendaftaranService{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/pendaftaran", `{"nik":"3204011203990001"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", body["status"])
}

func TestSubmitValidationMapsTo400(t *testing.T) {
	app := newTestApp(&stubPendaftaranService{submitErr: domain.ErrValidation})

	resp, body := doJSON(t, app, http.MethodPost, "/api/pendaftaran", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", body["status"])
}

func TestApproveErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", domain.ErrNotFound, fiber.StatusNotFound},
		{"already decided", domain.ErrInvalidStateTransition, fiber.StatusConflict},
		{"duplicate identity", domain.ErrDuplicateIdentity, fiber.StatusUnprocessableEntity},
		{"infrastructure", assert.AnError, fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(&stubPendaftaranService{approveErr: tc.err})
			resp, body := doJSON(t, app, http.MethodPost, "/api/admin/pendaftaran/1/approve", "")
			assert.Equal(t, tc.code, resp.StatusCode)
			assert.Equal(t, "error", body["status"])
		})
	}
}

func TestApproveSuccessHasNoWarningKey(t *testing.T) {
	app := newTestApp(&stubPendaftaranService{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/admin/pendaftaran/1/approve", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", body["status"])
	_, hasWarning := body["warning"]
	assert.False(t, hasWarning)
}

func TestApproveWithWarningStaysSuccess(t *testing.T) {
	app := newTestApp(&stubPendaftaranService{warning: "notifikasi gagal terkirim"})

	resp, body := doJSON(t, app, http.MethodPost, "/api/admin/pendaftaran/1/approve", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "notifikasi gagal terkirim", body["warning"])
}

func TestRejectConflictMapsTo409(t *testing.T) {
	app := newTestApp(&stubPendaftaranService{rejectErr: domain.ErrInvalidStateTransition})

	resp, _ := doJSON(t, app, http.MethodPost, "/api/admin/pendaftaran/1/reject", "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestBadIDParamMapsTo404(t *testing.T) {
	app := newTestApp(&stubPendaftaranService{})

	resp, _ := doJSON(t, app, http.MethodPost, "/api/admin/pendaftaran/abc/approve", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
