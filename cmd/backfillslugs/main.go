// Одноразовая утилита: проставляет slug легаси-брифам, у которых его нет.
package main

import (
	"context"

	"bountyboard_backend/internal/app"
	"bountyboard_backend/internal/config"
	"bountyboard_backend/internal/logger"
	"bountyboard_backend/internal/repositories"
	"bountyboard_backend/internal/services"
)

func main() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	_, sqlDB, err := app.OpenDatabase(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err.Error())
	}
	defer sqlDB.Close()

	briefService := services.NewBriefService(
		repositories.NewBriefRepository(sqlDB),
		repositories.NewSubmissionRepository(sqlDB),
		repositories.NewUserRepository(sqlDB),
	)

	assigned, err := briefService.BackfillSlugs(context.Background())
	if err != nil {
		logger.Fatal("slug backfill failed", "error", err.Error())
	}

	logger.Info("slug backfill complete", "assigned", assigned)
}
