package dto

type BandingRequest struct {
	NamaPemohon   string `json:"nama_pemohon"`
	Email         string `json:"email"`
	SkemaID       *uint  `json:"id_skema,omitempty"`
	AlasanBanding string `json:"alasan_banding"`
}

type BandingUpdateRequest struct {
	Status    string `json:"status"`
	Tanggapan string `json:"tanggapan"`
}

type PengaduanRequest struct {
	NamaPelapor  string `json:"nama_pelapor"`
	Email        string `json:"email"`
	Kategori     string `json:"kategori"`
	IsiPengaduan string `json:"isi_pengaduan"`
}

type PengaduanUpdateRequest struct {
	Status    string `json:"status"`
	Tanggapan string `json:"tanggapan"`
}

type NotifikasiRequest struct {
	Judul string `json:"judul"`
	Pesan string `json:"pesan"`
	Tipe  string `json:"tipe"`
}

type IA01ObservasiRequest struct {
	UnitID     uint   `json:"id_unit"`
	Elemen     string `json:"elemen"`
	KriteriaUK string `json:"kriteria_unjuk_kerja"`
	Benchmark  string `json:"benchmark"`
}

type IA03PertanyaanRequest struct {
	UnitID        uint   `json:"id_unit"`
	Pertanyaan    string `json:"pertanyaan"`
	JawabanSesuai string `json:"jawaban_sesuai"`
}

type DashboardResponse struct {
	TotalPendaftaran   int64 `json:"total_pendaftaran"`
	PendaftaranPending int64 `json:"pendaftaran_pending"`
	TotalAsesor        int64 `json:"total_asesor"`
	TotalTUK           int64 `json:"total_tuk"`
	TotalSkema         int64 `json:"total_skema"`
	TotalJadwal        int64 `json:"total_jadwal"`
	BandingDiajukan    int64 `json:"banding_diajukan"`
	PengaduanBaru      int64 `json:"pengaduan_baru"`
}
