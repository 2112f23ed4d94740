// Package detectors defines the fixed set of secret patterns the scanner
// tests file content against. Each pattern pairs a case-insensitive regular
// expression with a human-readable category label.
package detectors
