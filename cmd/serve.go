package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mbecker/wortschatz/internal/server"
	"github.com/mbecker/wortschatz/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the drill API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides WORTSCHATZ_ADDR env var, default :8080)")
	serveCmd.Flags().Bool("no-db", false, "Run without persistence; stats live only in memory")
}

func runServe(cmd *cobra.Command) error {
	catalog, err := loadCatalog(cmd)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	var statsStore server.StatsStore
	var st *store.Store
	if noDB, _ := cmd.Flags().GetBool("no-db"); !noDB {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err = store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		statsStore = st.StatsRepo()
	}

	addr := listenAddr(cmd)
	srv := server.New(catalog, statsStore)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// SIGHUP re-reads the catalog and swaps it into the running server.
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for range hup {
			catalog, err := loadCatalog(cmd)
			if err != nil {
				log.Printf("warning: catalog reload failed, keeping current: %v", err)
				continue
			}
			srv.ReplaceCatalog(catalog)
			log.Printf("catalog reloaded (%d lessons)", catalog.Len())
		}
	}()
	defer signal.Stop(hup)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("wortschatz listening on %s (%d lessons)", addr, catalog.Len())
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

func listenAddr(cmd *cobra.Command) string {
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		return addr
	}
	if addr := os.Getenv("WORTSCHATZ_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}
