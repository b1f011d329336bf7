// Package demo enthält die gemeinsame Infrastruktur der Beispiel-Binaries:
// Seitenrahmen, Übermittlungs-Dekodierung, Konfiguration und das Hosting mit
// sauberem Herunterfahren. Die Beispiele selbst bleiben dadurch kurze,
// eigenständige main-Dateien.
package demo

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	formgen "github.com/goliatone/go-formgen"
	"github.com/goliatone/go-formgen/pkg/renderers/vanilla"
)

// abschaltFrist begrenzt das Abarbeiten offener Verbindungen beim Beenden.
const abschaltFrist = 5 * time.Second

// NeuerMux liefert einen ServeMux mit den Framework-Assets (Stylesheet,
// Browser-Runtime) und einem Health-Endpunkt. Die Beispiele hängen ihre
// eigenen Routen daran.
func NeuerMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(vanilla.AssetsFS()))))
	mux.Handle("/runtime/", http.StripPrefix("/runtime/", http.FileServerFS(formgen.RuntimeAssetsFS())))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Starten betreibt den HTTP-Server bis zum ersten Fehler oder bis SIGINT /
// SIGTERM eintrifft und fährt ihn dann innerhalb der Abschaltfrist herunter.
func Starten(beispiel, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	log.Printf("%s läuft auf http://localhost%s", beispiel, addr)

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errChan:
		return fmt.Errorf("demo: server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), abschaltFrist)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("demo: herunterfahren: %v", err)
	}
	return nil
}
