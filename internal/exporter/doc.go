// Package exporter writes aggregated pulse rows to CSV. A generic writer
// handles file handling and framing; the pulse writer owns the fixed output
// column order and per-field formatting.
package exporter
