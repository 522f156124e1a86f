package main

import (
	"context"
	"os/signal"
	"syscall"

	"logiflow/cmd"
	"logiflow/infra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	loadingEnv := infra.NewConfig()
	infra.SetupLogger(loadingEnv)
	container := infra.NewContainerDI(loadingEnv)

	cmd.StartAPI(ctx, container)
}
