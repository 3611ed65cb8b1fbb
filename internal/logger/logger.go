package logger

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Params struct {
	fx.In

	LogLevel    zapcore.Level
	Environment string `name:"environment"`
}

func NewLogger(p Params) (*zap.Logger, error) {
	// production mode
	if p.LogLevel == zapcore.WarnLevel || p.Environment == "production" {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(p.LogLevel)
		return config.Build()
	}

	// development mode, more detailed logging
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(p.LogLevel)
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return config.Build()
}
