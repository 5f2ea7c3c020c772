package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"evparts_admin/api"
	"evparts_admin/config"
	"evparts_admin/internal/auth"
	"evparts_admin/internal/categories"
	"evparts_admin/internal/groups"
	"evparts_admin/internal/ledger"
	"evparts_admin/internal/media"
	"evparts_admin/internal/products"
	"evparts_admin/internal/reports"
	"evparts_admin/internal/sales"
	"evparts_admin/internal/store"
	"evparts_admin/internal/users"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("error loading config: %v", err))
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	st := store.New()
	if _, err := os.Stat(cfg.DataFile); err == nil {
		if err := st.Restore(cfg.DataFile); err != nil {
			logger.Fatal("failed to restore store snapshot", zap.String("file", cfg.DataFile), zap.Error(err))
		}
		logger.Info("store restored", zap.String("file", cfg.DataFile))
	}
	if st.Empty() {
		if err := store.Seed(st); err != nil {
			logger.Fatal("failed to seed store", zap.Error(err))
		}
		logger.Info("store seeded with default data")
	}

	ld := ledger.New(logger)

	var mirror sales.Mirror
	if cfg.LedgerURL != "" && cfg.LedgerSubmitter != "" {
		mirror = ledger.NewClient(cfg.LedgerURL, cfg.LedgerSubmitter, logger)
		logger.Info("ledger mirroring enabled",
			zap.String("url", cfg.LedgerURL),
			zap.String("submitter", cfg.LedgerSubmitter),
		)
	}

	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	groupService := groups.NewService(st.Groups(), logger)
	userService := users.NewService(st.Users(), st.Groups(), logger)
	categoryService := categories.NewService(st.Categories(), logger)
	mediaService := media.NewService(st.Media(), cfg.UploadDir, logger)
	productService := products.NewService(st.Products(), st.Categories(), st.Media(), logger)
	saleService := sales.NewService(st.Sales(), mirror, logger)
	reportService := reports.NewService(st.Sales(), st.Products(), st.Users(), st.Categories(), logger)

	r := gin.Default()
	api.InitRoutes(r, api.Services{
		Tokens:     tokens,
		Users:      userService,
		Groups:     groupService,
		Categories: categoryService,
		Products:   productService,
		Sales:      saleService,
		Media:      mediaService,
		Reports:    reportService,
		Ledger:     ld,
		Logger:     logger,
	})

	srv := &http.Server{Addr: cfg.Addr, Handler: r}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("error trying to start server", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("addr", cfg.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("server shutdown", zap.Error(err))
	}

	if err := st.Snapshot(cfg.DataFile); err != nil {
		logger.Error("failed to save store snapshot", zap.String("file", cfg.DataFile), zap.Error(err))
	} else {
		logger.Info("store snapshot saved", zap.String("file", cfg.DataFile))
	}
}
