package domain

// SKKNI is a national competency standard document.
type SKKNI struct {
	ID         uint   `gorm:"primaryKey;column:id_skkni" json:"id_skkni"`
	NomorSKKNI string `gorm:"type:varchar(100);not null;column:nomor_skkni" json:"nomor_skkni"`
	Judul      string `gorm:"type:varchar(255);not null" json:"judul"`
	Tahun      int    `json:"tahun"`
	Bidang     string `gorm:"type:varchar(100)" json:"bidang"`
	Timestamps
}

func (SKKNI) TableName() string { return "skkni" }

// UnitKompetensi mirrors the original unit_kompetensi table: a competency
// unit belongs to one SKKNI document.
type UnitKompetensi struct {
	ID         uint   `gorm:"primaryKey;column:id_unit" json:"id_unit"`
	SKKNIID    uint   `gorm:"not null;index;column:id_skkni" json:"id_skkni"`
	KodeUnit   string `gorm:"type:varchar(50);not null" json:"kode_unit"`
	JudulUnit  string `gorm:"type:varchar(255);not null" json:"judul_unit"`
	Timestamps
}

func (UnitKompetensi) TableName() string { return "unit_kompetensi" }
