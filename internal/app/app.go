package app

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bountyboard_backend/database"
	"bountyboard_backend/internal/auth"
	"bountyboard_backend/internal/config"
	"bountyboard_backend/internal/email"
	"bountyboard_backend/internal/handlers"
	"bountyboard_backend/internal/logger"
	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/routes"
	"bountyboard_backend/internal/services"
)

// Run инициализирует и запускает HTTP сервер
func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	gormDB, sqlDB, err := OpenDatabase(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err.Error())
	}

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("failed to run migrations", "error", err.Error())
	}
	logger.Info("database migrated")

	if err := seedDemoAdmin(gormDB, cfg); err != nil {
		logger.Fatal("failed to seed demo admin", "error", err.Error())
	}

	emailProvider := buildEmailProvider(cfg)
	defer emailProvider.Close()

	svc := services.NewServiceContainer(sqlDB, emailProvider)
	appHandlers := handlers.NewAppHandlers(svc)
	router := routes.SetupRouter(appHandlers)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("🚀 Server starting", "addr", addr, "env", cfg.Server.Env)

	if err := router.Run(addr); err != nil {
		logger.Fatal("server stopped", "error", err.Error())
	}
}

// OpenDatabase открывает gorm-подключение и возвращает также низкоуровневый
// пул *sql.DB, который инжектится в репозитории.
func OpenDatabase(cfg *config.Config) (*gorm.DB, *sql.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, nil, err
	}

	return gormDB, sqlDB, nil
}

// seedDemoAdmin создает учетку админа, если ее еще нет.
// Без настроенных demo-креденшалов сидинг пропускается.
func seedDemoAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Demo.AdminEmail == "" || cfg.Demo.AdminPassword == "" {
		logger.Warn("demo admin is not configured, skipping seed")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", cfg.Demo.AdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.Demo.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        cfg.Demo.AdminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		Username:     "admin",
		IsOnboarded:  true,
		OrgName:      cfg.Demo.OrgName,
	}

	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("demo admin seeded", "email", cfg.Demo.AdminEmail)
	return nil
}

// buildEmailProvider возвращает SMTP провайдер, а без настроенного SMTP
// хоста - mock, который только логирует отправку.
func buildEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured, using mock email provider")
		return NewMockEmailProvider()
	}

	renderer, err := email.NewHTMLRenderer()
	if err != nil {
		logger.Fatal("failed to build email templates", "error", err.Error())
	}

	return email.NewSMTPProvider(&email.SMTPConfig{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.SMTPUsername,
		Password: cfg.Email.SMTPPassword,
		From:     cfg.Email.FromEmail,
		FromName: cfg.Email.FromName,
		UseTLS:   cfg.Email.UseTLS,
	}, renderer)
}
