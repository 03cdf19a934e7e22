package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ElenaG518/wdconnect-server/internal/config"
	"github.com/ElenaG518/wdconnect-server/internal/managers"
	"github.com/ElenaG518/wdconnect-server/internal/routing"
	"github.com/ElenaG518/wdconnect-server/internal/stores"
)

const envFile = ".env"

func Init() {
	err := godotenv.Load(envFile)
	if err != nil {
		log.Info("No .env file found, using environment variables from system")
	} else {
		log.Info("Loaded environment variables from .env file")
	}

	setLogLevel(os.Getenv("LOG_LEVEL"))

	// Build the process configuration once; everything receives it by reference
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading configuration: ", err)
	}

	// Connect to the document store
	databaseMgr, err := managers.NewDatabaseManager(cfg)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := databaseMgr.Close(ctx); err != nil {
			log.Error("Error disconnecting from database: ", err)
		}
	}()

	// Initialize stores
	userStore := stores.NewUserStore(databaseMgr)
	profileStore := stores.NewProfileStore(databaseMgr)
	postStore := stores.NewPostStore(databaseMgr)

	// Initialize JWT manager
	jwtMgr := managers.NewJWTManager(cfg)

	// Initialize GitHub manager
	githubMgr := managers.NewGithubManager(cfg)

	// Initialize router
	r := routing.InitRouter(databaseMgr, jwtMgr, githubMgr, userStore, profileStore, postStore)
	log.Println("Initialized router")

	// Handle interrupt signal gracefully
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)

		<-c
		log.Println("Server shutting down...")
		os.Exit(0)
	}()

	// Start server on the configured port
	log.Printf("Starting server on port %s...\n", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	if err != nil {
		log.Fatal("Error starting server: ", err)
	}
}

func setLogLevel(logLevel string) {
	switch logLevel {
	case "DEBUG":
		log.SetLevel(log.DebugLevel)
	case "INFO":
		log.SetLevel(log.InfoLevel)
	case "WARN":
		log.SetLevel(log.WarnLevel)
	case "ERROR":
		log.SetLevel(log.ErrorLevel)
	case "FATAL":
		log.SetLevel(log.FatalLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	log.SetReportCaller(true)

	log.SetOutput(os.Stdout)
}
