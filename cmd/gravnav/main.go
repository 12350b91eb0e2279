// cmd/gravnav/main.go
package main

import (
	"context"
	"os"

	"github.com/opd-ai/go-gravnav/pkg/logging"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(context.Background(), os.Args); err != nil {
		logging.NewLogger().Error(context.Background(), "gravnav failed", err)
		os.Exit(1)
	}
}
