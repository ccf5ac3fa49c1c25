package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"member_web/internal/cli"
	"member_web/internal/client"
	"member_web/internal/logging"
	"member_web/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := logging.NewWithOutput(cfg.Log, cfg.Server.Env, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(client.New(cfg.Client.APIBaseURL), os.Stdin, os.Stdout)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, cli.ErrFormRejected) {
			log.WithError(err).Error("member-cli failed")
		}
		stop()
		os.Exit(1)
	}
}
