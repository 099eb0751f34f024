package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zapcore.Field

var (
	Int      = zap.Int
	Uint     = zap.Uint
	String   = zap.String
	Error    = zap.Error
	Duration = zap.Duration
	Any      = zap.Any
)
