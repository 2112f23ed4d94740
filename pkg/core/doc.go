// Package core provides a small, stable facade over insightctl's internal
// scanning engine and security checks for external integrations. It
// deliberately re-exports a narrow API surface so pre-commit hooks and CI
// tooling can depend on a stable import path without touching internal
// implementation packages.
//
// Example:
//
//	cfg := core.Config{Root: "."}
//	res, err := core.Scan(cfg)
//	if err != nil { /* handle */ }
//	if !res.Clean() { /* block the commit */ }
package core
