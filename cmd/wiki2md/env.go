package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-wiki2md/internal/logger"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *logger.Logger
	Getenv  func(string) string
	Environ func() []string
}

// DefaultEnv returns the production environment. Logs go to stderr.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Logger:  logger.New(os.Stderr),
		Getenv:  os.Getenv,
		Environ: os.Environ,
	}
}
