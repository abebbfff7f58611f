package fiberlog

import "github.com/sirupsen/logrus"

// Config selects the logger instance and the per-request tags to emit.
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault logs onto the standard logger with the basic request tags.
var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}
