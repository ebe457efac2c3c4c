package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/noah-isme/aps-console/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.RootCommand(cli.NewApp()).ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
