package main

import (
	"github.com/spf13/cobra"

	"docuagent/internal/model"
	"docuagent/internal/service"
)

func (c *cli) risksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "risks",
		Aliases: []string{"reports"},
		Short:   "Review risk reports",
	}

	var f service.RiskFilter
	list := &cobra.Command{
		Use:   "list",
		Short: "List risk reports with a status summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()
			res, err := c.risks.List(ctx, f)
			if err != nil {
				return err
			}
			return c.printer.print(res)
		},
	}
	list.Flags().StringVar(&f.Severity, "severity", service.FilterAll, "all, High, Medium or Low")
	list.Flags().StringVar(&f.Status, "status", service.FilterAll, "all, Open, Reviewing or Resolved")
	list.Flags().StringVar(&f.Search, "search", "", "Filter by title, document name or description")

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show one risk report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()
			r, err := c.risks.Get(ctx, args[0])
			if err != nil {
				return err
			}
			return c.printer.print(r)
		},
	}

	var showList bool
	status := &cobra.Command{
		Use:       "status ID STATUS",
		Short:     "Set a report's status (Open, Reviewing or Resolved)",
		Args:      cobra.ExactArgs(2),
		ValidArgs: statusNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			// With --list the reports are loaded once and the updated entry is
			// swapped in locally, without a second fetch.
			var before *service.RiskListResult
			if showList {
				var err error
				if before, err = c.risks.List(ctx, service.RiskFilter{}); err != nil {
					return err
				}
			}

			r, err := c.risks.UpdateStatus(ctx, args[0], model.RiskStatus(args[1]))
			if err != nil {
				return err
			}
			if before == nil {
				return c.printer.print(r)
			}
			reports := service.ReplaceReport(before.Reports(), r.RiskReport)
			return c.printer.print(service.NewRiskListResult(reports, service.RiskFilter{}))
		},
	}
	status.Flags().BoolVar(&showList, "list", false, "Print every report after the update instead of the updated one")

	cmd.AddCommand(list, get, status)
	return cmd
}

func statusNames() []string {
	names := make([]string, 0, len(model.Statuses))
	for _, s := range model.Statuses {
		names = append(names, string(s))
	}
	return names
}
