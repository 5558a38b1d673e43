// Package dataprocessing implements the casting pulse pipeline core: record
// normalization and daily bucket aggregation.
//
// # Architecture
//
// The package is organized into three components:
//
//  1. Normalizer: applies the field classifiers to every raw listing,
//     producing one derived record per input row in input order
//  2. Aggregator: groups derived records by (date, region, project type),
//     applies the suppression floor and computes bucket statistics
//  3. Pipeline: sequences ingest → normalize → aggregate → sort → export;
//     it owns no business logic of its own
//
// # Data Flow
//
//	Input file → ingest → RawRecords → Normalizer → DerivedRecords →
//	Aggregator → PulseRows (sorted) → exporter → output CSV
//
// # Policies
//
// Buckets smaller than the suppression floor are discarded entirely. The
// bucket median rate snaps to the configured quantum (half-up rounding).
// Share and sentiment outputs are clamped to their valid ranges before
// rounding. Records whose posting date cannot be parsed contribute to no
// bucket and are counted in the pipeline summary as skipped.
package dataprocessing
