// Package modkit provides module wiring and core deps
package modkit

import (
	"tenantrisk/internal/core/model"
	"tenantrisk/internal/platform/config"
	"tenantrisk/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	Model model.State
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still check Model.Loaded before inference
func (d Deps) ZeroOK() bool { return true }
