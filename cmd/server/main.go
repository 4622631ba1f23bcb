package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ozpv/ozpv/internal/api"
	"github.com/ozpv/ozpv/internal/assets"
	"github.com/ozpv/ozpv/internal/certs"
	"github.com/ozpv/ozpv/internal/config"
	"github.com/ozpv/ozpv/internal/site"
	"github.com/ozpv/ozpv/internal/utils"
	"github.com/ozpv/ozpv/web"
)

func main() {
	configPath := flag.String("config", config.PathFromEnv(utils.Resolve(config.DefaultPath)), "path to the YAML config file")
	addr := flag.String("addr", "", "listen address, overrides the config file")
	watch := flag.Bool("watch", true, "reload site content when the config file changes")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	logger := utils.NewWriterLogger(os.Stdout)
	if cfg.LogFile != "" {
		if logger, err = utils.NewLogger(utils.Resolve(cfg.LogFile)); err != nil {
			log.Fatalf("open log: %v", err)
		}
	}
	defer logger.Close()

	if err := run(cfg, *configPath, *watch, logger); err != nil {
		logger.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, configPath string, watch bool, logger *utils.Logger) error {
	pages, err := site.NewRenderer(web.Templates, cfg.Site)
	if err != nil {
		return err
	}
	store, err := assets.Render(web.Static(), "pkg")
	if err != nil {
		return err
	}
	s := &api.Server{
		Pages:    pages,
		Assets:   store,
		WasmPath: utils.Resolve(cfg.WasmPath),
		Log:      logger,
	}
	if _, err := os.Stat(s.WasmPath); err != nil {
		logger.Warnf("%s not found, eyes will not follow the pointer until it is built", s.WasmPath)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewHandler(s),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
	if cfg.TLS.Enabled() {
		cm := certs.NewManager(utils.Resolve(cfg.TLS.CertFile), utils.Resolve(cfg.TLS.KeyFile))
		if srv.TLSConfig, err = cm.TLSConfig(); err != nil {
			return err
		}
		if leaf, err := cm.Leaf(); err != nil {
			logger.Warnf("inspect certificate: %v", err)
		} else if cm.IsExpired(leaf) {
			logger.Warnf("certificate expired on %s", leaf.NotAfter.Format(time.RFC3339))
		} else if cm.ExpiresWithin(leaf, 30*24*time.Hour) {
			logger.Warnf("certificate expires on %s", leaf.NotAfter.Format(time.RFC3339))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watch {
		go func() {
			err := config.Watch(ctx, configPath, func(next config.Config) {
				pages.SetSite(next.Site)
				logger.Infof("reloaded site content from %s", configPath)
			}, func(err error) {
				logger.Warnf("config reload: %v", err)
			})
			if err != nil {
				logger.Warnf("config watch disabled: %v", err)
			}
		}()
	}

	errc := make(chan error, 1)
	go func() {
		logger.Infof("server running on %s", cfg.Addr)
		if cfg.TLS.Enabled() {
			errc <- srv.ListenAndServeTLS("", "")
		} else {
			errc <- srv.ListenAndServe()
		}
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
