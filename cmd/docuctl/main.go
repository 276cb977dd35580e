package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"docuagent/internal/client"
	"docuagent/internal/config"
	"docuagent/internal/logging"
	"docuagent/internal/service"
)

// cli holds the state shared by every subcommand.
type cli struct {
	cfg *config.AppConfig

	apiURL  string
	output  string
	timeout time.Duration
	verbose bool

	stdout io.Writer
	stderr io.Writer

	logger    *zap.Logger
	printer   *printer
	documents service.DocumentService
	risks     service.RiskService
	dashboard service.DashboardService
	settings  service.SettingsService
}

func newRootCmd(cfg *config.AppConfig, stdout, stderr io.Writer) *cobra.Command {
	c := &cli{cfg: cfg, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "docuctl",
		Short: "Command-line client for the DocuAgent document analysis API",
		Long: `docuctl talks to a DocuAgent backend directly.

It lists and uploads documents, reviews risk reports, shows dashboard
statistics and edits application settings. The backend URL comes from
--api-url, DOCUAGENT_API_URL or NEXT_PUBLIC_API_URL.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&c.apiURL, "api-url", cfg.Backend.BaseURL, "DocuAgent backend base URL")
	root.PersistentFlags().StringVarP(&c.output, "output", "o", formatTable, "Output format: table, json or yaml")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 0, "Per-command deadline; 0 waits as long as the transport does")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log backend calls to stderr")

	root.AddCommand(
		c.documentsCmd(),
		c.risksCmd(),
		c.statsCmd(),
		c.settingsCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	p, err := newPrinter(c.stdout, c.output)
	if err != nil {
		return err
	}
	c.printer = p

	level := zapcore.WarnLevel
	if c.verbose {
		level = zapcore.DebugLevel
	}
	c.logger = logging.New(c.stderr, c.cfg.Location(), level)

	api := client.New(c.apiURL, client.WithLogger(c.logger))
	c.documents = service.NewDocumentService(api.Documents, service.NewUploadGate(c.cfg.Upload.MaxBytes))
	c.risks = service.NewRiskService(api.Risks)
	c.dashboard = service.NewDashboardService(api.Stats, c.cfg.RecentLimit)
	c.settings = service.NewSettingsService(api.Settings)
	return nil
}

// context bounds a command by --timeout when one is given.
func (c *cli) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(cmd.Context(), c.timeout)
	}
	return cmd.Context(), func() {}
}

func main() {
	root := newRootCmd(config.Load(), os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		os.Exit(1)
	}
}

// describeError prefixes backend errors with their status code.
func describeError(err error) string {
	if apiErr, ok := client.AsAPIError(err); ok {
		return fmt.Sprintf("error: %s (HTTP %d)", apiErr.Message, apiErr.StatusCode)
	}
	return "error: " + err.Error()
}
