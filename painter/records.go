package painter

import (
	"math"
	"strings"

	"github.com/gogpu/ggtrack/interval"
)

// Record is a drawable input record. Painters never modify records.
type Record interface {
	// ID returns the record's unique id, used to look up its slot.
	ID() string
	// Span returns the genomic interval the record covers.
	Span() interval.Interval
}

// Feature is a BED-like feature with optional thick (coding) region and
// blocks (exons).
type Feature struct {
	UID        string
	Start, End int
	Name       string
	Strand     string
	Thick      *interval.Interval
	Blocks     []interval.Interval
	Score      float64
}

// ID implements Record.
func (f Feature) ID() string { return f.UID }

// Span implements Record.
func (f Feature) Span() interval.Interval { return interval.New(f.Start, f.End) }

// FeatureScore returns the feature's score for ScoreScaler.
func (f Feature) FeatureScore() float64 { return f.Score }

// Mate is one end of a read pair.
type Mate struct {
	Start, End int
	Cigar      string
	Strand     string
	Seq        string
}

// reverseStrand reports whether strand names the reverse strand.
func reverseStrand(strand string) bool { return strand == "-" }

// Read is an aligned sequencing read. Paired reads carry both ends in Mates
// and leave Cigar, Strand and Seq empty.
type Read struct {
	UID        string
	Start, End int
	Name       string
	Cigar      string
	Strand     string
	Seq        string
	Mates      *[2]Mate
}

// ID implements Record.
func (r Read) ID() string { return r.UID }

// Span implements Record.
func (r Read) Span() interval.Interval { return interval.New(r.Start, r.End) }

// Paired reports whether r holds a mate pair.
func (r Read) Paired() bool { return r.Mates != nil }

// Variant is one VCF-like locus. Alt and Genotypes are comma-joined; each
// genotype is "a/b" or "a|b" with allele indices (0 = reference, "." = missing).
type Variant struct {
	UID       string
	Pos       int
	Name      string
	Ref       string
	Alt       string
	Genotypes string

	// AlleleCounts optionally holds one called-allele count per alt allele.
	// When nil, counts are derived from Genotypes.
	AlleleCounts []int
}

// ID implements Record.
func (v Variant) ID() string { return v.UID }

// Span implements Record.
func (v Variant) Span() interval.Interval { return interval.New(v.Pos, v.Pos+1) }

// Samples returns the per-sample genotype strings.
func (v Variant) Samples() []string {
	if v.Genotypes == "" {
		return nil
	}
	return strings.Split(v.Genotypes, ",")
}

// Point is one value of a value series. A NaN Value is a gap.
type Point struct {
	Pos   int
	Value float64
}

// Gap returns a point that breaks the series at pos.
func Gap(pos int) Point { return Point{Pos: pos, Value: math.NaN()} }

// ID implements Record.
func (p Point) ID() string { return "" }

// Span implements Record.
func (p Point) Span() interval.Interval { return interval.New(p.Pos, p.Pos+1) }

// IsGap reports whether p breaks the series.
func (p Point) IsGap() bool { return math.IsNaN(p.Value) }

// Contact is one cell of an interaction matrix between two intervals.
type Contact struct {
	UID          string
	Start1, End1 int
	Chrom2       string
	Start2, End2 int
	Value        float64
}

// ID implements Record.
func (c Contact) ID() string { return c.UID }

// Span implements Record.
func (c Contact) Span() interval.Interval { return interval.New(c.Start1, c.End1) }
