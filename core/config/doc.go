// File: doc.go
// Title: Core Configuration Package Documentation
// Description: Documents the configuration package used by the mPAS CLI.
//              Supports TOML and YAML files with environment variable
//              overrides and typed accessors.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-06-14
//
// Change History:
// - 2026-06-14 v0.1.0: Initial implementation

/*
Package config provides file-based configuration for mPAS.

Configuration files may be TOML or YAML; the format is detected from the
file extension. Values are addressed by dotted keys and read through typed
accessors with defaults:

	cfg, err := config.Load("configs/mpas.toml")
	level := cfg.GetString("log.level", "info")

Every key can be overridden through an environment variable of the form
MPAS_<KEY> with dots replaced by underscores (MPAS_LOG_LEVEL).
*/
package config
