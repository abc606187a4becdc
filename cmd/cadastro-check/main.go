// Command cadastro-check validates CPFs, mobile phones and display names from files or stdin
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cadastro/internal/platform/logger"
	"cadastro/internal/services/check"
)

func main() {
	opt := logger.FromEnv()
	opt.Writer = os.Stderr
	logger.Init(opt)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := check.NewRootCommand().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, check.ErrInvalid) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(check.ExitCode(err))
	}
}
