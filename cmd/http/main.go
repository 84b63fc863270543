package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"kgeyst.com/whiskers/pkg/common"
	"kgeyst.com/whiskers/pkg/whiskers/api"
	"kgeyst.com/whiskers/pkg/whiskers/infrastructure/rest"
)

const shutdownTimeout = 5 * time.Second

func main() {
	err := mainImpl()
	if err != nil {
		panic(err)
	}
}

func mainImpl() error {
	_ = godotenv.Load()
	config, err := common.LoadConfigOrEmpty("config.yaml")
	if err != nil {
		return err
	}
	logger := common.NewFileLogger(config.GetStringOrDefault(api.ConfigKeyLogPath, "log.txt"))
	whiskers := api.NewPublicAPIWithLogger(config, logger)
	if !config.GetBoolOrDefault("httpDebug", false) {
		gin.SetMode(gin.ReleaseMode)
	}
	server := &http.Server{
		Addr:    config.GetStringOrDefault("httpAddress", ":8080"),
		Handler: rest.NewRouter(whiskers, logger),
	}
	serverErrors := make(chan error, 1)
	go func() {
		logger.Log("listening on " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-quit:
	}
	logger.Log("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}
