package cmd

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/AnTengye/contractdash/pkg/logger"
	"github.com/AnTengye/contractdash/router"
	"github.com/AnTengye/contractdash/server"
	"github.com/AnTengye/contractdash/service"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the contract API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			logger.Init(&logger.Config{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
			})
			slog.Info("configuration loaded successfully", "config", configPath)

			store := service.InitContractStore(&cfg.Store)

			gin.SetMode(gin.ReleaseMode)
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(cfg.Server.Port, router.New(cfg, store)).Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides config)")
	return cmd
}
