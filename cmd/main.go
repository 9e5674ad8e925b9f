package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"backend/config"
	"backend/controllers"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	config.InitDB()
	utils.InitMailer()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	controllers.InitRealtimeController(hub)

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.WithError(err).Warn("push notifications disabled")
	} else {
		controllers.InitDeviceController(push)
	}
	services.InitAlertDeps(config.DB, hub, push)

	r := routes.SetupRouter()

	addr := ":" + os.Getenv("PORT")
	if addr == ":" {
		addr = ":8080"
	}
	log.WithField("addr", addr).Info("server starting")
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
