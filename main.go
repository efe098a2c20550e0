package main

import (
	"FrameVault/config"
	"FrameVault/internal/handler"
	"FrameVault/internal/middleware"
	"FrameVault/internal/repo"
	"FrameVault/internal/service"
	"FrameVault/internal/storage"
	"FrameVault/router"

	"github.com/sirupsen/logrus"
)

// main initializes services and starts the HTTP server.
func main() {
	config.InitConfig()
	repo.InitMysql()
	storage.InitMinio()

	log := logrus.StandardLogger()
	users := repo.NewGormUserRepo(repo.Db)
	frames := repo.NewGormFrameRepo(repo.Db)
	authService := service.NewAuthService(users, log)
	frameService := service.NewFrameService(frames, storage.Default, log)

	h := handler.New(authService, frameService)
	r := router.InitRouter(h, middleware.Auth(authService.CurrentUser))

	if err := r.Run(config.AppConfig.ListenAddr); err != nil {
		log.Fatal("server error: ", err)
	}
}
