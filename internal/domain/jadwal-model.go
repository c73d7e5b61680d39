package domain

import "time"

// JadwalUji is one scheduled competency test: a scheme, a venue, an assessor
// and a date.
type JadwalUji struct {
	ID         uint      `gorm:"primaryKey;column:id_jadwal" json:"id_jadwal"`
	SkemaID    uint      `gorm:"not null;index;column:id_skema" json:"id_skema"`
	TUKID      uint      `gorm:"not null;index;column:id_tuk" json:"id_tuk"`
	AsesorID   uint      `gorm:"not null;index;column:id_asesor" json:"id_asesor"`
	TanggalUji time.Time `gorm:"not null" json:"tanggal_uji"`
	Kuota      int       `gorm:"not null;default:0" json:"kuota"`
	Keterangan string    `gorm:"type:text" json:"keterangan"`
	Status     string    `gorm:"type:varchar(20);not null;default:terjadwal" json:"status"`
	Skema      *Skema    `gorm:"foreignKey:SkemaID" json:"skema,omitempty"`
	TUK        *TUK      `gorm:"foreignKey:TUKID" json:"tuk,omitempty"`
	Asesor     *Asesor   `gorm:"foreignKey:AsesorID" json:"asesor,omitempty"`
	Timestamps
}

func (JadwalUji) TableName() string { return "jadwal_uji" }
