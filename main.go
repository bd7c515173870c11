package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github/itish2003/smartcity/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.NewRootCmd(commands.DefaultGeneratorFactory).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
