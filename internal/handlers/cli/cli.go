package cli

import (
	"context"
	"os"

	"github.com/gabapcia/maxdelta/internal/balancechange"

	"github.com/urfave/cli/v3"
)

// newApp builds the root command with every subcommand registered.
func newApp(svc balancechange.Service) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "maxdelta",
		Description:           "Reports the address with the largest absolute net balance change over the latest blocks.",
		Usage:                 "maxdelta [command] [flags]",
		Commands: []*cli.Command{
			serveCommand(svc),
			computeCommand(svc),
		},
	}
}

// Run parses os.Args and executes the matching command.
//
//   - `serve`: exposes the computation over HTTP until SIGINT or SIGTERM.
//   - `compute`: runs a single computation and prints the JSON result.
func Run(ctx context.Context, svc balancechange.Service) error {
	return newApp(svc).Run(ctx, os.Args)
}
