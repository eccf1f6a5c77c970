// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// slogLogger adapts gorm's logger interface onto the process-wide slog
// handler. Record-not-found errors are expected control flow and not logged.
type slogLogger struct {
	level logger.LogLevel
}

func (s *slogLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &slogLogger{level: level}
}

func (s *slogLogger) Info(ctx context.Context, msg string, data ...any) {
	if s.level >= logger.Info {
		slog.InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (s *slogLogger) Warn(ctx context.Context, msg string, data ...any) {
	if s.level >= logger.Warn {
		slog.WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (s *slogLogger) Error(ctx context.Context, msg string, data ...any) {
	if s.level >= logger.Error {
		slog.ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (s *slogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if err == nil || errors.Is(err, gorm.ErrRecordNotFound) || s.level < logger.Error {
		return
	}
	sql, rows := fc()
	slog.ErrorContext(ctx, "database error", "err", err, "sql", sql, "rows", rows, "duration", time.Since(begin))
}

func getDSN(host, user, password, dbname, port string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)
}

func NewConnection(host, user, password, dbname, port string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(getDSN(host, user, password, dbname, port)), &gorm.Config{
		Logger: &slogLogger{level: logger.Error},
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
