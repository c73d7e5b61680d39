package domain

import "time"

// Notifikasi is one entry in the admin notification feed. Rows come from two
// places: admins creating announcements directly, and the Kafka consumer
// ingesting workflow events emitted by this service.
type Notifikasi struct {
	ID         uint      `gorm:"primaryKey;column:id_notifikasi" json:"id_notifikasi"`
	Judul      string    `gorm:"type:varchar(255);not null" json:"judul"`
	Pesan      string    `gorm:"type:text;not null" json:"pesan"`
	Tipe       string    `gorm:"type:varchar(50);not null;default:info" json:"tipe"`
	Sumber     string    `gorm:"type:varchar(50)" json:"sumber"` // admin | event
	Dibaca     bool      `gorm:"not null;default:false" json:"dibaca"`
	Tanggal    time.Time `gorm:"autoCreateTime" json:"tanggal"`
	Timestamps
}

func (Notifikasi) TableName() string { return "notifikasi" }
