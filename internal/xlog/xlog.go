// Package xlog is the package-wide diagnostic logger: a single named
// logger obtained from github.com/dep2p/log, configured once with sane
// defaults, and never touched on the coding hot path. It only ever logs
// one-time setup events (GF(2^16) table initialization).
package xlog

import logging "github.com/dep2p/log"

var logger = logging.Logger("gf16rs")

func init() {
	logging.SetupLogging(logging.Config{
		Format: logging.JSONOutput,
		Stderr: true,
		Level:  logging.LevelInfo,
	})
}

// Logger returns the package-wide structured logger.
func Logger() *logging.ZapEventLogger { return logger }

// Configure lets an embedding application redirect gf16rs's own diagnostic
// logging to a file instead of stderr.
func Configure(filename string, stderr bool) {
	logging.SetupLogging(logging.Config{
		Format: logging.JSONOutput,
		Stderr: stderr,
		File:   filename,
		Level:  logging.LevelInfo,
	})
}
