package main

import (
	"cinema_admin/cache"
	"cinema_admin/config"
	"cinema_admin/database"
	"cinema_admin/handler"
	"cinema_admin/helper"
	"cinema_admin/invoice"
	"cinema_admin/logger"
	"cinema_admin/metrics"
	"cinema_admin/router"
	"cinema_admin/utils"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(cfg.App.Env)
	defer logger.Sync()

	loc := cfg.App.Location()
	metrics.Register()

	if err := database.ConnectDB(cfg.Database, log); err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}
	rdb := database.ConnectRedis(cfg.Redis, log)

	helper.StartShowtimeScheduler(database.DB, log)
	if err := helper.StartShowtimeStatsScheduler(database.DB, loc, log); err != nil {
		log.Error("start showtime stats scheduler", zap.Error(err))
	}
	defer helper.StopShowtimeScheduler()

	renderer := invoice.NewRenderer(invoice.Config{
		VenueName:    cfg.Ticket.VenueName,
		AddressLine1: cfg.Ticket.AddressLine1,
		AddressLine2: cfg.Ticket.AddressLine2,
		FilePrefix:   cfg.Ticket.FilePrefix,
		Location:     loc,
	}, log.Named("invoice"), metrics.RenderObserver{})

	services := handler.Services{
		Location:    loc,
		Renderer:    renderer,
		TicketCache: cache.NewTicketPDFCache(rdb, cfg.Redis.PDFTTL),
		Log:         log,
	}
	if cfg.SMTP.Host != "" {
		smtp := utils.SMTPSettings{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		}
		services.SendTickets = func(to, orderCode, fileName string, pdf []byte) error {
			return utils.SendTicketsEmail(smtp, to, orderCode, fileName, pdf)
		}
	}
	handler.Init(services)

	app := fiber.New(fiber.Config{
		BodyLimit: 4 * 1024 * 1024,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.AllowOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Disposition",
		MaxAge:           600,
	}))

	router.SetupRoutes(app, cfg.App.JWTSecret)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		_ = app.Shutdown()
	}()

	if err := app.Listen(":" + cfg.App.Port); err != nil {
		log.Error("server stopped", zap.Error(err))
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
