// Package utils holds small cross-cutting helpers shared by the indexing
// packages: structured logging, and nothing else — file walking and
// ignore-rules live in internal/workspace where the spec's pruning rule is
// exact, not heuristic.
package utils

import "go.uber.org/zap"

// NewNopLogger returns a logger that discards everything, the default for
// library callers that never wire one in.
func NewNopLogger() *zap.Logger {
	return zap.NewNop()
}

// NewDevelopmentLogger returns a human-readable console logger at the given
// level, used by the cmd/code-indexer CLI.
func NewDevelopmentLogger(level zap.AtomicLevel) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	return cfg.Build()
}

// ParseLevel maps a CLI/config string to a zap level, defaulting to info on
// an unrecognized value.
func ParseLevel(s string) zap.AtomicLevel {
	var lvl zap.AtomicLevel
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return lvl
}
