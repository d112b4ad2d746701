package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"leave-desk-backend/config"
	apiv1 "leave-desk-backend/controllers/v1"
	publicapi "leave-desk-backend/controllers/v1/public"
	"leave-desk-backend/fiberlog"
	"leave-desk-backend/initializers"
	"leave-desk-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New()
	app.Use(fiberRecover.New())

	// ссылка из письма руководителю, без авторизации
	publicapi.InitApprovalRouters(app, config.Conf.Approval.LinkSecret)

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, DELETE, PUT",
	}))
	apiV1.Use(middleware.WithBodyLimit(config.Conf.App.BodyLimit))
	apiV1.Use(middleware.ErrNotify(config.Conf.App.ErrNotifyURL))
	apiV1.Use(middleware.AuthorizationRequired())
	apiV1.Use(middleware.SessionRequired())
	apiv1.InitRequestApiRouters(apiV1)
	apiv1.InitProfileApiRouters(apiV1)
	apiv1.InitTaskApiRouters(apiV1)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-c
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
