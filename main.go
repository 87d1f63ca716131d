package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/hitechrobotics/catalog-api/app/cmd"
	"github.com/hitechrobotics/catalog-api/app/configs"
)

func main() {
	env := configs.LoadEnv()
	logger := configs.SetupLogger(env)

	if err := cmd.RunCli(context.Background(), env, logger, os.Args); err != nil {
		logger.Error("exiting", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
