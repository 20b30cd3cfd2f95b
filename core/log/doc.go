// File: doc.go
// Title: Core Logging Package Documentation
// Description: Documents the structured logging package used throughout mPAS.
//              Provides leveled, field-based logging with text, console, and
//              JSON output formats.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-06-14
//
// Change History:
// - 2026-06-14 v0.1.0: Initial implementation

/*
Package log provides structured logging for mPAS.

All mPAS components log through this package. Loggers are leveled
(Trace through Fatal), carry structured key-value fields, and can be
named per component:

	logger := log.GetDefault().WithName("pascal-parser")
	logger.Debug("parsing started", log.Fields{"length": len(source)})

Output format is selectable between human-readable text, colored console
output for development, and JSON for machine consumption.
*/
package log
