package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggtrack/interval"
	"github.com/gogpu/ggtrack/painter"
)

const defaultWidth = 800

// Job describes one rendering: a view window and the tracks stacked over it.
type Job struct {
	Start     int     `yaml:"start"`     // first base of the window
	End       int     `yaml:"end"`       // end of the window, exclusive
	Width     int     `yaml:"width"`     // image width in pixels
	Reference string  `yaml:"reference"` // window reference sequence, optional
	Tracks    []Track `yaml:"tracks"`
}

// Track is one painter and its inline records. Only the record list
// matching Kind is read.
type Track struct {
	Name       string              `yaml:"name"`
	Kind       string              `yaml:"kind"`        // painter kind, e.g. "linked_feature"
	Mode       string              `yaml:"mode"`        // display mode, default "Pack"
	Prefs      painter.Preferences `yaml:"prefs"`       // painter preferences
	ScoreRange []float64           `yaml:"score_range"` // [min, max] score mapped onto feature alpha

	Features []featureSpec `yaml:"features"`
	Reads    []readSpec    `yaml:"reads"`
	Variants []variantSpec `yaml:"variants"`
	Points   []pointSpec   `yaml:"points"`
	Contacts []contactSpec `yaml:"contacts"`
}

type featureSpec struct {
	ID     string  `yaml:"id"`
	Start  int     `yaml:"start"`
	End    int     `yaml:"end"`
	Name   string  `yaml:"name"`
	Strand string  `yaml:"strand"`
	Thick  []int   `yaml:"thick"`  // [start, end]
	Blocks [][]int `yaml:"blocks"` // list of [start, end]
	Score  float64 `yaml:"score"`
}

type mateSpec struct {
	Start  int    `yaml:"start"`
	End    int    `yaml:"end"`
	Cigar  string `yaml:"cigar"`
	Strand string `yaml:"strand"`
	Seq    string `yaml:"seq"`
}

type readSpec struct {
	ID     string     `yaml:"id"`
	Start  int        `yaml:"start"`
	End    int        `yaml:"end"`
	Name   string     `yaml:"name"`
	Cigar  string     `yaml:"cigar"`
	Strand string     `yaml:"strand"`
	Seq    string     `yaml:"seq"`
	Mates  []mateSpec `yaml:"mates"` // none, or both ends of a pair
}

type variantSpec struct {
	ID           string   `yaml:"id"`
	Pos          int      `yaml:"pos"`
	Name         string   `yaml:"name"`
	Ref          string   `yaml:"ref"`
	Alt          string   `yaml:"alt"`
	Genotypes    []string `yaml:"genotypes"`
	AlleleCounts []int    `yaml:"allele_counts"`
}

type pointSpec struct {
	Pos   int     `yaml:"pos"`
	Value float64 `yaml:"value"`
	Gap   bool    `yaml:"gap"`
}

type contactSpec struct {
	ID     string  `yaml:"id"`
	Start1 int     `yaml:"start1"`
	End1   int     `yaml:"end1"`
	Chrom2 string  `yaml:"chrom2"`
	Start2 int     `yaml:"start2"`
	End2   int     `yaml:"end2"`
	Value  float64 `yaml:"value"`
}

// loadJob reads and validates a YAML job file.
func loadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("trackdemo: %w", err)
	}
	return parseJob(data)
}

func parseJob(data []byte) (*Job, error) {
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("trackdemo: parse job: %w", err)
	}
	if job.Width == 0 {
		job.Width = defaultWidth
	}
	if err := job.validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

func (j *Job) validate() error {
	var errs []error
	if j.End <= j.Start {
		errs = append(errs, fmt.Errorf("empty window [%d, %d)", j.Start, j.End))
	}
	if j.Width < 0 {
		errs = append(errs, fmt.Errorf("negative width %d", j.Width))
	}
	if len(j.Tracks) == 0 {
		errs = append(errs, errors.New("no tracks"))
	}
	for i, t := range j.Tracks {
		if _, err := painter.ParseKind(t.Kind); err != nil {
			errs = append(errs, fmt.Errorf("track %d: %w", i, err))
		}
		if t.Mode != "" {
			if _, err := painter.ParseMode(t.Mode); err != nil {
				errs = append(errs, fmt.Errorf("track %d: %w", i, err))
			}
		}
		if len(t.ScoreRange) != 0 && len(t.ScoreRange) != 2 {
			errs = append(errs, fmt.Errorf("track %d: score_range needs [min, max]", i))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("trackdemo: invalid job: %w", err)
	}
	return nil
}

// scale returns the pixels per base of the job's window.
func (j *Job) scale() float64 {
	return float64(j.Width) / float64(j.End-j.Start)
}

// label returns the track's display name.
func (t Track) label(i int) string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("track%d", i)
}

// recordID returns id, or a name unique within the track when it is empty.
func recordID(track, id string, i int) string {
	if id != "" {
		return id
	}
	return fmt.Sprintf("%s/%d", track, i)
}

func pair(v []int) (interval.Interval, error) {
	if len(v) != 2 {
		return interval.Interval{}, fmt.Errorf("want [start, end], got %v", v)
	}
	return interval.New(v[0], v[1]), nil
}

func (t Track) features(name string) ([]painter.Feature, error) {
	out := make([]painter.Feature, len(t.Features))
	for i, f := range t.Features {
		pf := painter.Feature{
			UID:    recordID(name, f.ID, i),
			Start:  f.Start,
			End:    f.End,
			Name:   f.Name,
			Strand: f.Strand,
			Score:  f.Score,
		}
		if len(f.Thick) > 0 {
			thick, err := pair(f.Thick)
			if err != nil {
				return nil, fmt.Errorf("feature %s thick: %w", pf.UID, err)
			}
			pf.Thick = &thick
		}
		for _, b := range f.Blocks {
			block, err := pair(b)
			if err != nil {
				return nil, fmt.Errorf("feature %s block: %w", pf.UID, err)
			}
			pf.Blocks = append(pf.Blocks, block)
		}
		out[i] = pf
	}
	return out, nil
}

func (t Track) reads(name string) ([]painter.Read, error) {
	out := make([]painter.Read, len(t.Reads))
	for i, r := range t.Reads {
		pr := painter.Read{
			UID:    recordID(name, r.ID, i),
			Start:  r.Start,
			End:    r.End,
			Name:   r.Name,
			Cigar:  r.Cigar,
			Strand: r.Strand,
			Seq:    r.Seq,
		}
		switch len(r.Mates) {
		case 0:
		case 2:
			var mates [2]painter.Mate
			for k, m := range r.Mates {
				mates[k] = painter.Mate{Start: m.Start, End: m.End, Cigar: m.Cigar, Strand: m.Strand, Seq: m.Seq}
			}
			pr.Mates = &mates
		default:
			return nil, fmt.Errorf("read %s: want 2 mates, got %d", pr.UID, len(r.Mates))
		}
		out[i] = pr
	}
	return out, nil
}

func (t Track) variants(name string) []painter.Variant {
	out := make([]painter.Variant, len(t.Variants))
	for i, v := range t.Variants {
		out[i] = painter.Variant{
			UID:          recordID(name, v.ID, i),
			Pos:          v.Pos,
			Name:         v.Name,
			Ref:          v.Ref,
			Alt:          v.Alt,
			Genotypes:    strings.Join(v.Genotypes, ","),
			AlleleCounts: v.AlleleCounts,
		}
	}
	return out
}

func (t Track) points() []painter.Point {
	out := make([]painter.Point, len(t.Points))
	for i, p := range t.Points {
		if p.Gap {
			out[i] = painter.Gap(p.Pos)
			continue
		}
		out[i] = painter.Point{Pos: p.Pos, Value: p.Value}
	}
	return out
}

func (t Track) contacts(name string) []painter.Contact {
	out := make([]painter.Contact, len(t.Contacts))
	for i, c := range t.Contacts {
		out[i] = painter.Contact{
			UID:    recordID(name, c.ID, i),
			Start1: c.Start1,
			End1:   c.End1,
			Chrom2: c.Chrom2,
			Start2: c.Start2,
			End2:   c.End2,
			Value:  c.Value,
		}
	}
	return out
}
