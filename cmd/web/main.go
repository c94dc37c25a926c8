package main

import (
	"bountyboard_backend/internal/app"
)

// @title BountyBoard API
// @version 1.0
// @description Бэкенд маркетплейса брендовых спонсорств: брифы, сабмишены, заявки инфлюенсеров
// @host localhost:8080
// @BasePath /api/v1
func main() {
	app.Run()
}
