package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "repayment-engine/internal/adapter/http"
	idem "repayment-engine/internal/adapter/middleware"
	"repayment-engine/internal/adapter/repository/mysql"
	"repayment-engine/internal/config"
	"repayment-engine/internal/infrastructure/cache"
	"repayment-engine/internal/infrastructure/db"
	"repayment-engine/internal/logger"
	loanuc "repayment-engine/internal/usecase/loan"
	"repayment-engine/internal/usecase/repayment"
)

func main() {
	cfg := config.Load()
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), logger.NewGormLogger(log.WithField("component", "gorm"), 200*time.Millisecond))
	if err != nil {
		log.WithError(err).Fatal("open mysql")
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.WithError(err).Fatal("mysql handle")
	}
	defer sqlDB.Close()

	if cfg.AutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			log.WithError(err).Fatal("migrate")
		}
		log.Info("schema migrated")
	}

	rdb, err := cache.OpenRedis(ctx, cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPass, DB: cfg.RedisDB})
	if err != nil {
		log.WithError(err).Fatal("open redis")
	}
	defer rdb.Close()

	loans := mysql.NewLoanRepository(gdb)
	installments := mysql.NewInstallmentRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	loanUC := loanuc.NewUsecase(loans, installments, tx, log)
	repayUC := repayment.NewUsecase(loans, payments, tx, log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	httpadp.Register(e,
		httpadp.NewHandler(sqlDB),
		httpadp.NewLoanHandler(loanUC, log),
		httpadp.NewRepaymentHandler(repayUC, log),
		idem.IdempotencyMiddleware(rdb, cfg.IdempotencyTTL(), log.WithField("component", "idempotency")),
	)

	addr := ":" + cfg.AppPort
	go func() {
		log.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown")
	}
}
