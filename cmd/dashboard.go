package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/AnTengye/contractdash/client"
	"github.com/AnTengye/contractdash/pkg/logger"
	"github.com/AnTengye/contractdash/service"
	"github.com/AnTengye/contractdash/ui"
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	var (
		apiURL  string
		dark    bool
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the terminal dashboard",
		Long: "Open the terminal dashboard. Without --api the dashboard works on a local\n" +
			"in-memory collection seeded from the store config.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("api") {
				cfg.Dashboard.APIURL = apiURL
			}
			if cmd.Flags().Changed("dark") {
				cfg.Dashboard.DarkMode = dark
			}

			// The alternate screen owns stdout.
			var out io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
				if err != nil {
					return fmt.Errorf("failed to open log file: %w", err)
				}
				defer f.Close()
				out = f
			}
			logger.Init(&logger.Config{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
				Output: out,
			})

			var backend ui.Backend
			opts := ui.Options{DarkMode: cfg.Dashboard.DarkMode}
			if cfg.Dashboard.APIURL != "" {
				slog.Info("dashboard using remote API", "url", cfg.Dashboard.APIURL)
				backend = client.New(cfg.Dashboard.APIURL)
				opts.SearchDebounce = ui.RemoteSearchDebounce
			} else {
				backend = ui.StoreBackend{Store: service.InitContractStore(&cfg.Store)}
			}

			return ui.Run(backend, opts)
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", "", "base URL of a running contractdash API (default local store)")
	cmd.Flags().BoolVar(&dark, "dark", false, "start in dark mode")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file instead of discarding them")
	return cmd
}
