package api

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/lspdigital/sertifikasi_service/config"
	"github.com/lspdigital/sertifikasi_service/infra/queue"
	"github.com/lspdigital/sertifikasi_service/internal/api/rest/handlers"
	"github.com/lspdigital/sertifikasi_service/internal/api/rest/middleware"
	"github.com/lspdigital/sertifikasi_service/internal/clients/wilayah"
	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/helper"
	"github.com/lspdigital/sertifikasi_service/internal/repository"
	"github.com/lspdigital/sertifikasi_service/internal/services"
	"github.com/lspdigital/sertifikasi_service/pkg/cloudinary"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config, log *zap.Logger) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("database connection error", zap.Error(err))
	}
	log.Info("database connected")

	// ---------- MIGRATION + SEED (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260901

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatal("migration lock error", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.AsesiProfile{},
		&domain.Pendaftaran{},
		&domain.Asesor{},
		&domain.TUK{},
		&domain.SKKNI{},
		&domain.UnitKompetensi{},
		&domain.Skema{},
		&domain.JadwalUji{},
		&domain.Banding{},
		&domain.Pengaduan{},
		&domain.Notifikasi{},
		&domain.DokumenMutu{},
		&domain.IA01Observasi{},
		&domain.IA03Pertanyaan{},
	); err != nil {
		log.Fatal("migration error", zap.Error(err))
	}
	log.Info("migration successful")

	authHelper := helper.SetupAuth(cfg.AccessSecret)
	seedAdmin(db, cfg, authHelper, log)

	// release before Listen blocks, or a second instance never gets past its
	// own pg_advisory_lock
	if err := db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error; err != nil {
		log.Warn("migration unlock failed", zap.Error(err))
	}

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
		log,
	)

	cld, err := cloudinary.New()
	if err != nil {
		log.Fatal("cloudinary init error", zap.Error(err))
	}
	uploader := cloudinary.NewCloudinaryUploader(cld)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	wilayahClient := wilayah.New(cfg.WilayahBaseURL)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	pendaftaranRepo := repository.NewPendaftaranRepository(db)
	asesorRepo := repository.NewAsesorRepository(db)
	tukRepo := repository.NewTUKRepository(db)
	skkniRepo := repository.NewSKKNIRepository(db)
	skemaRepo := repository.NewSkemaRepository(db)
	jadwalRepo := repository.NewJadwalRepository(db)
	bandingRepo := repository.NewBandingRepository(db)
	pengaduanRepo := repository.NewPengaduanRepository(db)
	notifikasiRepo := repository.NewNotifikasiRepository(db)
	dokumenRepo := repository.NewDokumenRepository(db)
	instrumenRepo := repository.NewInstrumenRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// ---------- Services ----------
	provisioner := services.NewAccountProvisioner(userRepo, authHelper)
	pendaftaranSvc := services.NewPendaftaranService(pendaftaranRepo, provisioner, kafkaProducer, log)
	authSvc := services.NewAuthService(userRepo, authHelper)
	asesorSvc := services.NewAsesorService(asesorRepo)
	tukSvc := services.NewTUKService(tukRepo, authHelper)
	skemaSvc := services.NewSkemaService(skkniRepo, skemaRepo)
	jadwalSvc := services.NewJadwalService(jadwalRepo, skemaRepo, tukRepo, asesorRepo)
	bandingSvc := services.NewBandingService(bandingRepo, pengaduanRepo)
	notifikasiSvc := services.NewNotifikasiService(notifikasiRepo, log)
	dokumenSvc := services.NewDokumenService(dokumenRepo, uploader)
	instrumenSvc := services.NewInstrumenService(instrumenRepo, skkniRepo)
	wilayahSvc := services.NewWilayahService(wilayahClient, rdb, log)

	// The notification feed consumes the same topic this service publishes
	// approval/rejection events to.
	if cfg.KafkaGroupID != "" {
		consumer := queue.NewKafkaConsumer(cfg.KafkaBroker, cfg.KafkaTopic, cfg.KafkaGroupID, notifikasiSvc, log)
		go consumer.Listen(context.Background())
	}

	// ---------- Routes ----------
	public := app.Group("/api")
	protected := app.Group("/api", middleware.AuthMiddleware(authHelper))
	admin := app.Group("/api/admin", middleware.AuthMiddleware(authHelper), middleware.AdminOnly())

	handlers.NewPendaftaranHandler(pendaftaranSvc).SetupRoutes(public, admin)
	handlers.NewAuthHandler(authSvc, authHelper).SetupRoutes(public, protected)
	handlers.NewAsesorHandler(asesorSvc).SetupRoutes(admin)
	handlers.NewTUKHandler(tukSvc).SetupRoutes(admin)
	handlers.NewSkemaHandler(skemaSvc).SetupRoutes(admin)
	handlers.NewJadwalHandler(jadwalSvc).SetupRoutes(admin)
	handlers.NewBandingHandler(bandingSvc).SetupRoutes(public, admin)
	handlers.NewNotifikasiHandler(notifikasiSvc).SetupRoutes(admin)
	handlers.NewDokumenHandler(dokumenSvc).SetupRoutes(admin)
	handlers.NewInstrumenHandler(instrumenSvc).SetupRoutes(admin)
	handlers.NewWilayahHandler(wilayahSvc).SetupRoutes(public)
	handlers.NewDashboardHandler(dashboardRepo).SetupRoutes(admin)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	log.Info("listening", zap.String("addr", cfg.ServerPort))
	log.Fatal("server stopped", zap.Error(app.Listen(cfg.ServerPort)))
}

// seedAdmin makes sure at least one back-office account exists. Credentials
// come from the environment so a fresh deploy is reachable.
func seedAdmin(db *gorm.DB, cfg config.Config, auth helper.Auth, log *zap.Logger) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	var existing domain.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Warn("admin seed lookup failed", zap.Error(err))
		return
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Warn("admin seed hash failed", zap.Error(err))
		return
	}

	if err := db.Create(&domain.User{
		NamaLengkap:  "Administrator",
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}).Error; err != nil {
		log.Warn("admin seed failed", zap.Error(err))
	}
}
