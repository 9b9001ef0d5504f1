package cli

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/maxdelta/internal/balancechange"

	"github.com/urfave/cli/v3"
)

// computeCommand runs one computation and prints the result as JSON.
//
//	maxdelta compute
//	{"address":"0xaa","balanceChange":"1000"}
func computeCommand(svc balancechange.Service) *cli.Command {
	return &cli.Command{
		Name:        "compute",
		Description: "Computes the max balance change over the latest blocks once and prints it as JSON.",
		Usage:       "Runs a single computation against the configured chain provider.",
		Action: func(ctx context.Context, c *cli.Command) error {
			result, err := svc.MaxBalanceChange(ctx)
			if err != nil {
				return err
			}

			return json.NewEncoder(c.Root().Writer).Encode(result)
		},
	}
}
