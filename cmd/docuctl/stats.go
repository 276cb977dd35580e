package main

import "github.com/spf13/cobra"

func (c *cli) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Aliases: []string{"dashboard"},
		Short:   "Show dashboard statistics with recent documents and risks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()
			res, err := c.dashboard.Overview(ctx)
			if err != nil {
				return err
			}
			return c.printer.print(res)
		},
	}
}
