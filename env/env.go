//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package env implements the global environment for the verification
// tools.
package env

import (
	"crypto/rand"
	"io"
	"os"
)

// Config defines the global configuration of the verification
// tools. Config must not be modified after being passed to any
// module.
type Config struct {
	// Rand is the source of entropy for generated inputs.
	Rand io.Reader
	// Out receives the tool output.
	Out io.Writer
	// Verbose enables diagnostic output.
	Verbose bool
}

// GetRandom returns the source of entropy for generated inputs.
func (config *Config) GetRandom() io.Reader {
	if config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetOutput returns the writer for the tool output.
func (config *Config) GetOutput() io.Writer {
	if config.Out != nil {
		return config.Out
	}
	return os.Stdout
}
