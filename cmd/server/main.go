package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"urlpro/internal/bot"
	"urlpro/internal/cache"
	"urlpro/internal/config"
	"urlpro/internal/database"
	"urlpro/internal/mailer"
	"urlpro/internal/service"
	"urlpro/internal/transport"
	"urlpro/internal/visitor"
	"urlpro/internal/worker"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ./config/config.yaml)")
	flag.Parse()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("Could not load configuration")
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logrus.WithError(err).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.WithField("port", cfg.Server.Port).Info("Starting urlpro service...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.Database.Driver, cfg.Database.DSN, database.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logrus.WithError(err).Error("Could not connect to database")
		return
	}
	defer db.Close()

	var linkCache service.LinkCache
	if cfg.Redis.Addr != "" {
		rc, err := cache.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logrus.WithError(err).Error("Could not connect to Redis")
			return
		}
		defer rc.Close()
		linkCache = rc
	} else {
		logrus.Warn("Redis address not provided, redirect cache disabled")
	}

	var clickSink service.ClickSink
	if cfg.ClickHouse.Enabled {
		mirror, err := database.ConnectClickHouse(ctx, database.ClickHouseOptions{
			Addr:          cfg.ClickHouse.Addr,
			User:          cfg.ClickHouse.User,
			Password:      cfg.ClickHouse.Password,
			Database:      cfg.ClickHouse.Database,
			BufferSize:    cfg.ClickHouse.BufferSize,
			BatchSize:     cfg.ClickHouse.BatchSize,
			FlushInterval: cfg.ClickHouse.FlushInterval,
		})
		if err != nil {
			logrus.WithError(err).Error("Could not connect to ClickHouse")
			return
		}
		defer mirror.Close()
		mirror.Start(ctx)
		clickSink = mirror
	}

	var locator visitor.Locator = visitor.NopLocator{}
	if cfg.GeoIP.DatabasePath != "" {
		geo, err := visitor.OpenGeoIP(cfg.GeoIP.DatabasePath, cfg.GeoIP.Timeout)
		if err != nil {
			logrus.WithError(err).Warn("GeoIP database unavailable, locations will be Unknown")
		} else {
			defer geo.Close()
			locator = geo
		}
	}

	notifications := service.NewNotifications(db)
	shortener := service.NewShortener(db, db, notifications, linkCache,
		service.NewMetadataFetcher(cfg.App.MetadataTimeout), service.ShortenerOptions{
			BaseURL:         cfg.App.BaseURL,
			CodeLength:      cfg.App.ShortCodeLength,
			MaxCodeAttempts: cfg.App.MaxCodeAttempts,
			CacheTTL:        cfg.Redis.CacheTTL,
			QRSize:          cfg.App.QRSize,
		})
	redirector := service.NewRedirector(shortener, db, locator, clickSink)
	accounts := service.NewAccounts(db, service.AccountOptions{
		JWTSecret:     cfg.JWT.Secret,
		JWTExpiration: cfg.JWT.Expiration,
		APICallsLimit: cfg.App.DefaultAPILimit,
	})
	reports := service.NewReports(db, db, db, db, db, cfg.App.BaseURL, cfg.App.AnalyticsDays)
	catalog := service.NewCatalog(db)

	var senders []worker.ReportSender
	if cfg.Email.Enabled {
		m, err := mailer.New(mailer.Options{
			From:     cfg.Email.From,
			Host:     cfg.Email.Host,
			Port:     cfg.Email.Port,
			Username: cfg.Email.Username,
			Password: cfg.Email.Password,
		})
		if err != nil {
			logrus.WithError(err).Error("Could not initialize mailer")
			return
		}
		senders = append(senders, m)
	}

	botErr := make(chan error, 1)
	if cfg.Telegram.Enabled {
		tgBot, err := bot.NewTelegramBot(cfg.Telegram.BotToken, accounts, shortener)
		if err != nil {
			logrus.WithError(err).Error("Could not initialize bot")
			return
		}
		senders = append(senders, tgBot)
		go func() { botErr <- tgBot.Start(ctx) }()
	} else {
		logrus.Warn("Telegram bot disabled")
	}

	workers := worker.NewPool(
		worker.ExpiryJob(shortener, cfg.Worker.ExpiryInterval),
		worker.QuotaJob(accounts, cfg.Worker.QuotaInterval),
		worker.ReportJob(reports, senders, cfg.Worker.ReportInterval),
	)
	workers.Start(ctx)

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := transport.InitRoutes(transport.Handlers{
		Links:    transport.NewLinkHandler(shortener, redirector),
		Reports:  transport.NewReportHandler(reports),
		Accounts: transport.NewAccountHandler(accounts, notifications, catalog),
		Auth:     accounts,
	}, cfg.Server.RequestTimeout)

	server := transport.NewServer(cfg.Server, router)
	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start(ctx) }()

	logrus.Info("Service is up and running!")

	serverDone, botDone := false, !cfg.Telegram.Enabled
	select {
	case <-ctx.Done():
		logrus.Info("Shutdown signal received")
	case err := <-serverErr:
		serverDone = true
		if err != nil {
			logrus.WithError(err).Error("Server stopped with error")
		}
	case err := <-botErr:
		botDone = true
		if err != nil {
			logrus.WithError(err).Error("Bot stopped with error")
		}
	}
	stop()

	logrus.Info("Shutting down gracefully...")
	if !serverDone {
		if err := <-serverErr; err != nil {
			logrus.WithError(err).Error("Server stopped with error")
		}
	}
	if !botDone {
		if err := <-botErr; err != nil {
			logrus.WithError(err).Error("Bot stopped with error")
		}
	}
	workers.Wait()
	logrus.Info("Shutdown complete")
}
