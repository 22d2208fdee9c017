package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/DarkShadow4/SMT-plusplus/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		addr    string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the alignment API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			srv := &http.Server{
				Addr:              addr,
				Handler:           server.NewServer(server.Config{Workers: workers}),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errc := make(chan error, 1)
			go func() {
				log.Printf("Now serving at %s, press Ctrl-C to shut down", addr)
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("serving: %v", err)
				}
				return nil
			case <-ctx.Done():
				log.Printf("Received Ctrl-C, shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", envOrDefault("SMTSCORE_ADDR", "127.0.0.1:8080"), "listen address")
	cmd.Flags().IntVar(&workers, "workers", 4, "scoring goroutines per /v1/score request")

	return cmd
}
