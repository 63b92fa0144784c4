package main

import (
	"loveacts-service/internal/app"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		ctx, stop := signalContext()
		defer stop()

		application, err := app.New(ctx, cfg, log)
		if err != nil {
			return err
		}

		return application.Run(ctx)
	},
}

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Consume domain events and send notification e-mails",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		ctx, stop := signalContext()
		defer stop()

		return app.RunNotifier(ctx, cfg, log)
	},
}
