// Package engine contains the core scanning logic for insightctl. It walks
// a directory tree, matches file content against the configured pattern set,
// and returns structured findings. This package is internal; external
// consumers should use the stable facade in pkg/core.
package engine
