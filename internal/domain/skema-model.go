package domain

// Skema is a certification scheme grouping competency units under one SKKNI.
type Skema struct {
	ID         uint   `gorm:"primaryKey;column:id_skema" json:"id_skema"`
	SKKNIID    uint   `gorm:"not null;index;column:id_skkni" json:"id_skkni"`
	KodeSkema  string `gorm:"type:varchar(50);not null" json:"kode_skema"`
	NamaSkema  string `gorm:"type:varchar(255);not null" json:"nama_skema"`
	Jenis      string `gorm:"type:varchar(50)" json:"jenis"` // okupasi | klaster | kkni
	JumlahUnit int    `json:"jumlah_unit"`
	Timestamps
}

func (Skema) TableName() string { return "skema" }
