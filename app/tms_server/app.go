package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	formatter "github.com/bluexlab/logrus-formatter"
	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/freightline/tms/pkg/config"
	"github.com/freightline/tms/pkg/tms_server/api"
	"github.com/freightline/tms/pkg/tms_server/middleware"
	"github.com/freightline/tms/pkg/util"
	"github.com/gobuffalo/packr/v2"
	"github.com/gobuffalo/pop"
	"github.com/gobuffalo/pop/logging"
	"github.com/sirupsen/logrus"
)

const appName string = "tms-server"
const defaultPort = 4000

type CLI struct {
	Server struct {
	} `cmd:"" help:"Run the server"`
	Migrate struct {
		Path string `short:"p" long:"path" help:"Path to the migration files. The migrations built into the binary are used when empty."`
	} `cmd:"" help:"Migrate the database"`
	Config string `short:"c" long:"config" help:"Path to the configuration file" type:"existingfile" default:"config.yaml"`
}

type Config struct {
	Database util.PostgresDatabaseConfig `yaml:"database"`
	Server   struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`
	Shipment     api.ShipmentConfig         `yaml:"shipment"`
	CORS         middleware.CORSConfig      `yaml:"cors"`
	RateLimit    middleware.RateLimitConfig `yaml:"rate_limit"`
	Auth         api.AuthConfig             `yaml:"auth"`
	OTLPEndpoint string                     `yaml:"otlp_endpoint"`
}

type App struct{}

func (a *App) Run() {
	formatter.InitLogger()

	var cli CLI
	ctx := kong.Parse(&cli, kong.Name(appName), kong.UsageOnError())
	switch ctx.Command() {
	case "server":
		a.runServer(cli)
	case "migrate":
		a.runMigrate(cli)
	default:
	}
}

func (a *App) loadConfig(cli CLI) Config {
	var appConfig Config
	if err := config.FromFile(cli.Config, &appConfig); err != nil {
		logrus.Errorf("failed to load config: %v", err)
		os.Exit(128)
	}
	if appConfig.Server.Port == 0 {
		appConfig.Server.Port = defaultPort
	}
	return appConfig
}

func (a *App) runServer(cli CLI) {
	ctx := context.Background()
	appConfig := a.loadConfig(cli)

	if endpoint := appConfig.OTLPEndpoint; endpoint != "" {
		exporter, err := otlp_util.InitExporter(
			otlp_util.WithContext(ctx),
			otlp_util.WithEndPoint(endpoint),
			otlp_util.WithServiceName(appName),
			otlp_util.WithInSecure(),
			otlp_util.WithErrorHandler(func(err error) {
				logrus.Warnf("OTLP error: %v", err)
			}),
		)
		if err != nil {
			logrus.Errorf("failed to initialize OTLP exporter: %v", err)
			os.Exit(128)
		}
		defer func() { _ = exporter.Shutdown(ctx) }()
	}

	apiConfig := api.APIConfig{
		Database:     appConfig.Database,
		LocalAddress: net.JoinHostPort(appConfig.Server.Host, strconv.Itoa(appConfig.Server.Port)),
		Shipment:     appConfig.Shipment,
		CORS:         appConfig.CORS,
		RateLimit:    appConfig.RateLimit,
		Auth:         appConfig.Auth,
	}
	apiServer, err := api.NewAPIWithConfig(apiConfig)
	if err != nil {
		logrus.Errorf("failed to create API server: %v", err)
		os.Exit(128)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func(wg *sync.WaitGroup) {
		defer wg.Done()

		logrus.Infof("%s listening on %s", appName, apiConfig.LocalAddress)
		if err := apiServer.Run(); err != nil {
			logrus.Errorf("failed to run API server: %v", err)
			os.Exit(1)
		}
	}(wg)

	// listen for the stop signal
	<-ctx.Done()

	// Restore default behavior on the signals we are listening to
	stop()
	logrus.Info("shutting down gracefully, press Ctrl+C again to force")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Close(ctx); err != nil {
		logrus.Warnf("failed to close API server: %v", err)
		os.Exit(1)
	}

	wg.Wait()
}

func (a *App) runMigrate(cli CLI) {
	appConfig := a.loadConfig(cli)

	// set up the logger
	pop.SetLogger(func(lvl logging.Level, s string, args ...interface{}) {
		switch lvl {
		case logging.Debug:
			logrus.Debugf(s, args...)
		case logging.Info:
			logrus.Infof(s, args...)
		case logging.Warn:
			logrus.Warnf(s, args...)
		case logging.Error:
			logrus.Errorf(s, args...)
		case logging.SQL:
			// Do nothing
		}
	})

	// setup database connection
	cd := pop.ConnectionDetails{
		Dialect:  "postgres",
		Database: appConfig.Database.Database,
		Host:     appConfig.Database.Host,
		Port:     strconv.Itoa(appConfig.Database.Port),
		User:     appConfig.Database.User,
		Password: appConfig.Database.Password,
	}
	conn, err := pop.NewConnection(&cd)
	if err != nil {
		logrus.Errorf("failed to create connection: %v", err)
		os.Exit(128)
	}

	// create the database if it doesn't exist
	if err = conn.Dialect.CreateDB(); err != nil {
		logrus.Warnf("failed to create database: %v", err)
	}

	var migrator pop.Migrator
	if cli.Migrate.Path != "" {
		fileMigrator, err := pop.NewFileMigrator(cli.Migrate.Path, conn)
		if err != nil {
			logrus.Errorf("failed to create migrator: %v", err)
			os.Exit(128)
		}
		migrator = fileMigrator.Migrator
	} else {
		boxMigrator, err := pop.NewMigrationBox(packr.New("migrations", "../../migrations"), conn)
		if err != nil {
			logrus.Errorf("failed to create migrator: %v", err)
			os.Exit(128)
		}
		migrator = boxMigrator.Migrator
	}
	// Remove SchemaPath to prevent migrator try to dump schema.
	migrator.SchemaPath = ""

	// run the migrations
	if err = migrator.Up(); err != nil {
		logrus.Errorf("failed to migrate: %v", err)
		os.Exit(1)
	}
	logrus.Info("database migrated")
}
