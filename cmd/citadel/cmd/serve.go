package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/dizitask/citadel/pkg/config"
	"github.com/dizitask/citadel/pkg/webui"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the citadel web server",
	Long:  `Serve the house list, house and character pages, and their JSON renditions under /api.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(settings)
		if err != nil {
			return err
		}

		server, err := webui.NewServer(webui.Options{
			Client:     client,
			Aggregator: newAggregator(client),
			PageSize:   settings.PageSize,
		})
		if err != nil {
			return err
		}

		go shutdownOnSignal(server)

		log.Infof("Using API at %s", settings.APIURL)

		return server.Start(settings.Port)
	},
}

func init() {
	serveCmd.Flags().IntP("port", "p", config.DefaultPort, "port to listen on")
}

func shutdownOnSignal(server *webui.Server) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	sig := <-c
	log.Infof("Got %s signal, shutting down...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Shutdown failed: %s", err)
	}
}
