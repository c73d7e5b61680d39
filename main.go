package main

import (
	"github.com/lspdigital/sertifikasi_service/config"
	"github.com/lspdigital/sertifikasi_service/internal/api"
	"github.com/lspdigital/sertifikasi_service/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync() //nolint:errcheck

	api.StartServer(cfg, log)
}
