// Package ggtrack renders genome browser tracks with gg-style drawing surfaces.
//
// # Overview
//
// ggtrack turns genomic records (features with exon blocks, sequencing reads
// with CIGAR strings, variant calls, value series and contact matrices) into
// drawing primitives for a 2D surface. A draw pass is a pure function of the
// records, the visible window [viewStart, viewEnd), the drawing preferences
// and the pixel scale; it returns an index from pixel position back to the
// record that produced it.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/ggtrack/painter"
//		"github.com/gogpu/ggtrack/recording"
//	)
//
//	p := painter.NewLinkedFeature(features, 95, 165, painter.Preferences{
//		"block_color": "#336699",
//	}, painter.ModePack)
//
//	rec := recording.NewRecorder(700, p.RequiredHeight(len(features), 700))
//	res := p.Draw(rec, 700, rec.Height(), 10, slots)
//	rec.FinishRecording().Playback(backend)
//
// # Architecture
//
// The module is organized into:
//   - Root: Color, ramps, fill styles, strand patterns, the Surface contract
//   - interval: half-open overlap classification
//   - cigar: alignment operation decoding into drawable blocks
//   - painter: coordinate mapping, position index, the painter family
//   - recording: a Surface that records commands for playback on backends
//
// # Coordinate System
//
// Genomic coordinates are 0-based half-open (BED). Pixel coordinates follow
// gg: origin at top-left, X increases right, Y increases down.
package ggtrack

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
