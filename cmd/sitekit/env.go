package main

import (
	"io"
	"os"
	"time"

	sitekit "github.com/alnah/go-sitekit"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, and the reader factory used to open the site root.
type Environment struct {
	Now       func() time.Time
	Stdout    io.Writer
	Stderr    io.Writer
	NewReader func(root string) sitekit.Reader
}

// DefaultEnv returns the production environment reading from the OS filesystem.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewReader: func(root string) sitekit.Reader {
			return sitekit.NewOSReader(root)
		},
	}
}
