package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/craftfolio/internal/clock"
	"github.com/ziadkadry99/craftfolio/internal/contact"
	"github.com/ziadkadry99/craftfolio/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site, the contact endpoint and the clock feed",
	Long: `Starts the craftfolio server. Static files are served from the site
folder, POST /api/contact appends submissions to contact/contact-info.json
and /api/clock streams the local time over a websocket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		store, err := contact.NewFileStore(resolveDir(cfg.SiteDir, cfg.ContactDir))
		if err != nil {
			return fmt.Errorf("opening contact store: %w", err)
		}

		srv := server.New(server.Config{
			Port:       cfg.Port,
			SiteDir:    cfg.SiteDir,
			StaticDeny: cfg.StaticDeny,
			AllowAll:   cfg.AllowAllOrigins,
		})
		contact.RegisterRoutes(srv.API(), store)
		clock.RegisterRoutes(srv.Router(), clock.NewFeed(cfg.ClockInterval))
		srv.MountStatic()

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		count, err := store.Count()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		fmt.Fprintf(os.Stderr, "craftfolio v%s listening on http://localhost:%d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Site: %s\n", cfg.SiteDir)
		fmt.Fprintf(os.Stderr, "  Submissions: %s (%d)\n", store.Path(), count)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 3000, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
