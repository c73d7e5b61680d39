package domain

import "time"

type BandingStatus string

const (
	BandingDiajukan BandingStatus = "diajukan"
	BandingDiproses BandingStatus = "diproses"
	BandingDiterima BandingStatus = "diterima"
	BandingDitolak  BandingStatus = "ditolak"
)

// CanTransitionTo: diajukan → diproses → (diterima | ditolak). The two
// decision states are terminal.
func (s BandingStatus) CanTransitionTo(next BandingStatus) bool {
	switch s {
	case BandingDiajukan:
		return next == BandingDiproses
	case BandingDiproses:
		return next == BandingDiterima || next == BandingDitolak
	}
	return false
}

// Banding is a formal appeal against an assessment decision.
type Banding struct {
	ID               uint          `gorm:"primaryKey;column:id_banding" json:"id_banding"`
	NamaPemohon      string        `gorm:"type:varchar(255);not null" json:"nama_pemohon"`
	Email            string        `gorm:"type:varchar(255)" json:"email"`
	SkemaID          *uint         `gorm:"index;column:id_skema" json:"id_skema,omitempty"`
	AlasanBanding    string        `gorm:"type:text;not null" json:"alasan_banding"`
	Status           BandingStatus `gorm:"type:varchar(20);not null;default:'diajukan'" json:"status"`
	Tanggapan        string        `gorm:"type:text" json:"tanggapan"`
	TanggalPengajuan time.Time     `gorm:"autoCreateTime" json:"tanggal_pengajuan"`
	Timestamps
}

func (Banding) TableName() string { return "banding" }

type PengaduanStatus string

const (
	PengaduanBaru     PengaduanStatus = "baru"
	PengaduanDiproses PengaduanStatus = "diproses"
	PengaduanSelesai  PengaduanStatus = "selesai"
)

func (s PengaduanStatus) CanTransitionTo(next PengaduanStatus) bool {
	switch s {
	case PengaduanBaru:
		return next == PengaduanDiproses
	case PengaduanDiproses:
		return next == PengaduanSelesai
	}
	return false
}

// Pengaduan is a complaint submitted by any stakeholder.
type Pengaduan struct {
	ID           uint            `gorm:"primaryKey;column:id_pengaduan" json:"id_pengaduan"`
	NamaPelapor  string          `gorm:"type:varchar(255);not null" json:"nama_pelapor"`
	Email        string          `gorm:"type:varchar(255)" json:"email"`
	Kategori     string          `gorm:"type:varchar(100)" json:"kategori"`
	IsiPengaduan string          `gorm:"type:text;not null" json:"isi_pengaduan"`
	Status       PengaduanStatus `gorm:"type:varchar(20);not null;default:'baru'" json:"status"`
	Tanggapan    string          `gorm:"type:text" json:"tanggapan"`
	TanggalLapor time.Time       `gorm:"autoCreateTime" json:"tanggal_lapor"`
	Timestamps
}

func (Pengaduan) TableName() string { return "pengaduan" }
