package state

import (
	"time"

	"formtree/config"
	"formtree/css"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:  time.Now(),
		Format: config.OutputFmtHtml,
	}
}

// Fonts returns typeface resolution table built from configuration.
func (e *LocalEnv) Fonts() *css.FontTable {
	if e.Cfg == nil {
		return nil
	}
	return css.NewFontTable(e.Cfg.Fonts.Families, e.Cfg.Fonts.Generic)
}
