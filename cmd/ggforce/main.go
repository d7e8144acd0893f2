// Command ggforce tessellates batches of curves described in TOML or YAML
// files.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/radovankavicky/ggforce/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Main(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
