package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	log "github.com/sirupsen/logrus"

	"keepnote/internal/config"
	"keepnote/internal/pkg/logging"
	"keepnote/internal/server"
	"keepnote/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if err := logging.Setup(os.Stdout, cfg.Log.Level, cfg.Log.Format); err != nil {
		log.WithError(err).Fatal("setup logging")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := server.OpenRepositories(ctx, cfg.Storage)
	if err != nil {
		log.WithError(err).WithField("driver", cfg.Storage.Driver).Fatal("open storage")
	}
	defer repos.Close()

	logger := log.NewEntry(log.StandardLogger())
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, logging.NewWatermillLogger(logger.WithField("component", "watermill")))
	defer pubSub.Close()

	publisherService := service.NewPublisherService(cfg.Events.TopicName, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Events.TopicName, logger)
	if err := consumerService.Consume(ctx); err != nil {
		log.WithError(err).Fatal("subscribe to resource events")
	}

	app := server.New(cfg, repos, publisherService)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.WithError(err).Error("shutdown")
		}
	}()

	log.WithFields(log.Fields{
		"addr":     cfg.HTTPAddr,
		"services": cfg.Services,
		"driver":   cfg.Storage.Driver,
	}).Info("keepnote listening")
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.WithError(err).Error("listen")
	}
}
