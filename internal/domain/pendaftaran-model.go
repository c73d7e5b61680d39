package domain

import "time"

type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

// CanTransitionTo is the single place transition rules live. Pending may move
// to approved or rejected; both of those are terminal.
func (s RegistrationStatus) CanTransitionTo(next RegistrationStatus) bool {
	if s != RegistrationPending {
		return false
	}
	return next == RegistrationApproved || next == RegistrationRejected
}

func (s RegistrationStatus) Valid() bool {
	switch s {
	case RegistrationPending, RegistrationApproved, RegistrationRejected:
		return true
	}
	return false
}

// Pendaftaran is one candidate (asesi) registration submission.
//
// The provinsi/kota/kecamatan/kelurahan columns are denormalized name strings
// copied from the wilayah directory at submission time, never foreign keys.
// The stored address must not shift if the directory is later edited.
type Pendaftaran struct {
	ID                 uint               `gorm:"primaryKey;column:id_pendaftaran" json:"id_pendaftaran"`
	NIK                string             `gorm:"type:varchar(16);not null;index" json:"nik"`
	NamaLengkap        string             `gorm:"type:varchar(255);not null" json:"nama_lengkap"`
	Email              string             `gorm:"type:varchar(255);not null" json:"email"`
	NoHP               string             `gorm:"type:varchar(20);not null" json:"no_hp"`
	ProgramStudi       string             `gorm:"type:varchar(100)" json:"program_studi"`
	KompetensiKeahlian string             `gorm:"type:varchar(100)" json:"kompetensi_keahlian"`
	WilayahRJI         string             `gorm:"type:varchar(100);column:wilayah_rji" json:"wilayah_rji"`
	Alamat             string             `gorm:"type:text" json:"alamat"`
	Provinsi           string             `gorm:"type:varchar(100)" json:"provinsi"`
	Kota               string             `gorm:"type:varchar(100)" json:"kota"`
	Kecamatan          string             `gorm:"type:varchar(100)" json:"kecamatan"`
	Kelurahan          string             `gorm:"type:varchar(100)" json:"kelurahan"`
	Status             RegistrationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TanggalDaftar      time.Time          `gorm:"autoCreateTime" json:"tanggal_daftar"`
	Timestamps
}

func (Pendaftaran) TableName() string { return "pendaftaran" }
