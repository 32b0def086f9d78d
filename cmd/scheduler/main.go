package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"repayment-engine/internal/adapter/repository/mysql"
	"repayment-engine/internal/config"
	"repayment-engine/internal/infrastructure/db"
	"repayment-engine/internal/logger"
	"repayment-engine/internal/usecase/overdue"
)

const sweepTimeout = 5 * time.Minute

func main() {
	cfg := config.Load()
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), logger.NewGormLogger(log.WithField("component", "gorm"), time.Second))
	if err != nil {
		log.WithError(err).Fatal("open mysql")
	}
	if sqlDB, err := gdb.DB(); err == nil {
		defer sqlDB.Close()
	}

	sweeper := overdue.NewUsecase(mysql.NewInstallmentRepository(gdb), cfg.SchedulerBatch, log)

	c := cron.New(cron.WithLocation(time.UTC), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := sweeper.Register(c, cfg.SchedulerSpec, sweepTimeout); err != nil {
		log.WithError(err).WithField("spec", cfg.SchedulerSpec).Fatal("schedule overdue sweep")
	}

	c.Start()
	log.WithFields(logrus.Fields{"spec": cfg.SchedulerSpec, "batch": cfg.SchedulerBatch}).Info("scheduler started")

	<-ctx.Done()
	log.Info("shutting down scheduler")
	<-c.Stop().Done()
	log.Info("scheduler stopped")
}
