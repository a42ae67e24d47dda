package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightmoves/internal/server"
	"github.com/katalvlaran/knightmoves/internal/service"
)

func newServeCmd(g *globalFlags) *cobra.Command {
	var (
		addr      string
		cacheSize int
		maxCoord  int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.Server.Addr = addr
			}
			if flags.Changed("cache-size") {
				cfg.Cache.Size = cacheSize
			}
			if flags.Changed("max-coordinate") {
				cfg.Search.MaxCoordinate = maxCoord
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
			if err != nil {
				return err
			}
			svc, err := service.New(service.Options{
				CacheSize:     cfg.Cache.Size,
				MaxCoordinate: cfg.Search.MaxCoordinate,
				Logger:        logger,
			})
			if err != nil {
				return err
			}
			logger.Info("starting knightmoves",
				"cache_size", cfg.Cache.Size, "max_coordinate", cfg.Search.MaxCoordinate)

			return server.New(svc, logger).ListenAndServe(cmd.Context(), cfg.Server.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
	cmd.Flags().IntVar(&cacheSize, "cache-size", 0, "Result cache entries, 0 disables (overrides cache.size)")
	cmd.Flags().IntVar(&maxCoord, "max-coordinate", 0, "Max |row| and |col| of queried squares, 0 is unlimited (overrides search.max_coordinate)")

	return cmd
}
