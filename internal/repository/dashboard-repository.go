package repository

import (
	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"gorm.io/gorm"
)

type DashboardRepository interface {
	Counts() (*dto.DashboardResponse, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) Counts() (*dto.DashboardResponse, error) {
	out := &dto.DashboardResponse{}

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&out.TotalPendaftaran, r.db.Model(&domain.Pendaftaran{})},
		{&out.PendaftaranPending, r.db.Model(&domain.Pendaftaran{}).Where("status = ?", domain.RegistrationPending)},
		{&out.TotalAsesor, r.db.Model(&domain.Asesor{})},
		{&out.TotalTUK, r.db.Model(&domain.TUK{})},
		{&out.TotalSkema, r.db.Model(&domain.Skema{})},
		{&out.TotalJadwal, r.db.Model(&domain.JadwalUji{})},
		{&out.BandingDiajukan, r.db.Model(&domain.Banding{}).Where("status = ?", domain.BandingDiajukan)},
		{&out.PengaduanBaru, r.db.Model(&domain.Pengaduan{}).Where("status = ?", domain.PengaduanBaru)},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return out, nil
}
