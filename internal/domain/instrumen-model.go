package domain

// IA01Observasi is one observation checklist row of the IA.01 instrument,
// attached to a competency unit.
type IA01Observasi struct {
	ID         uint   `gorm:"primaryKey;column:id_observasi" json:"id_observasi"`
	UnitID     uint   `gorm:"not null;index;column:id_unit" json:"id_unit"`
	Elemen     string `gorm:"type:varchar(255);not null" json:"elemen"`
	KriteriaUK string `gorm:"type:text;not null;column:kriteria_unjuk_kerja" json:"kriteria_unjuk_kerja"`
	Benchmark  string `gorm:"type:varchar(255)" json:"benchmark"`
	Timestamps
}

func (IA01Observasi) TableName() string { return "ia01_observasi" }

// IA03Pertanyaan is one question-bank row of the IA.03 instrument.
type IA03Pertanyaan struct {
	ID            uint   `gorm:"primaryKey;column:id_ia03" json:"id_ia03"`
	UnitID        uint   `gorm:"not null;index;column:id_unit" json:"id_unit"`
	Pertanyaan    string `gorm:"type:text;not null" json:"pertanyaan"`
	JawabanSesuai string `gorm:"type:text;column:jawaban_sesuai" json:"jawaban_sesuai"`
	Timestamps
}

func (IA03Pertanyaan) TableName() string { return "ia03_pertanyaan" }
