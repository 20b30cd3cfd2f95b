// File: doc.go
// Title: String Utility Package Documentation
// Description: Documents the small string helper package shared by the mPAS
//              pipeline and CLI.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-06-14
//
// Change History:
// - 2026-06-14 v0.1.0: Initial implementation

/*
Package stringx provides small string helpers that extend the Go standard
library, shared across mPAS packages.
*/
package stringx
