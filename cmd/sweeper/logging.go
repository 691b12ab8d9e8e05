package main

import (
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/dchistyakov/sweeper/internal/config"
	"github.com/dchistyakov/sweeper/internal/mines"
	"github.com/dchistyakov/sweeper/internal/solver"
)

func setupLogging(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if cfg.Development {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if cfg.LogFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.LogFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Warn("unable to set up log file: ", err)
		} else {
			log.AddHook(hook)
		}
	}

	mines.Log = log
	solver.Log = log
}
