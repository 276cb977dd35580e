package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"docuagent/internal/client"
	"docuagent/internal/service"
)

func (c *cli) documentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "documents",
		Aliases: []string{"docs"},
		Short:   "List, inspect, upload and delete documents",
	}

	var q service.DocumentQuery
	list := &cobra.Command{
		Use:   "list",
		Short: "List processed documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()
			res, err := c.documents.List(ctx, q)
			if err != nil {
				return err
			}
			return c.printer.print(res)
		},
	}
	list.Flags().StringVar(&q.Search, "search", "", "Filter by filename or summary")
	list.Flags().StringVar(&q.Sort, "sort", service.SortByDate, "Order by date (newest first) or name")

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show a document with its summary and risks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()
			doc, err := c.documents.Get(ctx, args[0])
			if err != nil {
				return err
			}
			return c.printer.print(doc)
		},
	}

	upload := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a PDF, DOCX, TXT, CSV or Excel file for analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			info, err := f.Stat()
			if err != nil {
				return err
			}

			ctx, cancel := c.context(cmd)
			defer cancel()
			res, err := c.documents.Upload(ctx, service.UploadInput{
				Filename: filepath.Base(args[0]),
				Size:     info.Size(),
				Content:  f,
			})
			if err != nil {
				return err
			}
			return c.printer.print(res)
		},
	}

	var ignoreMissing bool
	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()
			err := c.documents.Delete(ctx, args[0])
			switch {
			case ignoreMissing && client.IsNotFound(err):
				fmt.Fprintf(c.stdout, "%s not found\n", args[0])
				return nil
			case err != nil:
				return err
			}
			fmt.Fprintf(c.stdout, "deleted %s\n", args[0])
			return nil
		},
	}
	del.Flags().BoolVar(&ignoreMissing, "ignore-missing", false, "Succeed when the document is already gone")

	cmd.AddCommand(list, get, upload, del)
	return cmd
}
