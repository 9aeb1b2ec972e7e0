package main

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/gogpu/ggtrack"
	"github.com/gogpu/ggtrack/painter"
	"github.com/gogpu/ggtrack/recording"
)

// trackGap is the blank space below each track.
const trackGap = 6

// layout is a track ready to draw.
type layout struct {
	name   string
	p      painter.Painter
	slots  painter.Slots
	height int
}

// pack assigns each record to the first lane that is free at its start,
// visiting records by start position. It returns the slots and the number
// of lanes used.
func pack[T painter.Record](recs []T) (painter.Slots, int) {
	order := slices.Clone(recs)
	slices.SortStableFunc(order, func(a, b T) int {
		return cmp.Compare(a.Span().Start, b.Span().Start)
	})

	slots := make(painter.Slots, len(recs))
	var laneEnds []int
	for _, r := range order {
		span := r.Span()
		lane := slices.IndexFunc(laneEnds, func(end int) bool { return end <= span.Start })
		if lane < 0 {
			lane = len(laneEnds)
			laneEnds = append(laneEnds, 0)
		}
		laneEnds[lane] = span.End
		slots[r.ID()] = lane
	}
	return slots, len(laneEnds)
}

// build constructs the painter of track i.
func (j *Job) build(i int) (layout, error) {
	t := j.Tracks[i]
	name := t.label(i)

	kind, err := painter.ParseKind(t.Kind)
	if err != nil {
		return layout{}, err
	}
	mode := painter.ModePack
	if t.Mode != "" {
		if mode, err = painter.ParseMode(t.Mode); err != nil {
			return layout{}, err
		}
	}

	var opts []painter.Option
	if j.Reference != "" {
		opts = append(opts, painter.WithReferenceSeq(j.Reference))
	}
	if len(t.ScoreRange) == 2 {
		opts = append(opts, painter.WithAlphaScaler(painter.ScoreScaler{Min: t.ScoreRange[0], Max: t.ScoreRange[1]}))
	}

	l := layout{name: name}
	rows := 1
	switch kind {
	case painter.KindLinkedFeature, painter.KindArcLinkedFeature:
		features, err := t.features(name)
		if err != nil {
			return layout{}, fmt.Errorf("track %s: %w", name, err)
		}
		l.slots, rows = pack(features)
		if kind == painter.KindArcLinkedFeature {
			l.p = painter.NewArcLinkedFeature(features, j.Start, j.End, t.Prefs, mode, opts...)
		} else {
			l.p = painter.NewLinkedFeature(features, j.Start, j.End, t.Prefs, mode, opts...)
		}
	case painter.KindRead:
		reads, err := t.reads(name)
		if err != nil {
			return layout{}, fmt.Errorf("track %s: %w", name, err)
		}
		l.slots, rows = pack(reads)
		l.p = painter.NewRead(reads, j.Start, j.End, t.Prefs, mode, opts...)
	case painter.KindVariant:
		variants := t.variants(name)
		if len(variants) > 0 {
			rows = len(variants[0].Samples())
		}
		l.p = painter.NewVariant(variants, j.Start, j.End, t.Prefs, mode, opts...)
	case painter.KindValueSeries:
		l.p = painter.NewValueSeries(t.points(), j.Start, j.End, t.Prefs, mode, opts...)
	case painter.KindDiagonalHeatmap:
		l.p = painter.NewDiagonalHeatmap(t.contacts(name), j.Start, j.End, t.Prefs, mode, opts...)
	}
	l.height = l.p.RequiredHeight(rows, j.Width)
	return l, nil
}

// render draws every track of the job, top to bottom, into one recording.
func render(j *Job) (*recording.Recording, error) {
	tracks := make([]layout, len(j.Tracks))
	total := 0
	for i := range j.Tracks {
		l, err := j.build(i)
		if err != nil {
			return nil, err
		}
		tracks[i] = l
		total += l.height + trackGap
	}

	rec := recording.NewRecorder(j.Width, max(total, 1))
	scale := j.scale()
	y := 0
	for _, l := range tracks {
		rec.Save()
		rec.Translate(0, float64(y))
		res := l.p.Draw(rec, j.Width, l.height, scale, l.slots)
		rec.Restore()

		ggtrack.Logger().Debug("trackdemo: drew track",
			"name", l.name, "kind", l.p.Kind(), "y", y, "height", l.height,
			"incomplete", len(res.Incomplete))
		y += l.height + trackGap
	}
	return rec.FinishRecording(), nil
}

// save plays r back on the named backend and writes the result to path.
func save(r *recording.Recording, backend, path string) error {
	b, err := recording.NewBackend(backend)
	if err != nil {
		return err
	}
	fb, ok := b.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("trackdemo: backend %q cannot write files", backend)
	}
	if err := r.Playback(fb); err != nil {
		return fmt.Errorf("trackdemo: playback: %w", err)
	}
	return fb.SaveToFile(path)
}
