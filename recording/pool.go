package recording

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggtrack"
)

// ResourcePool stores the paths and fill styles referenced by commands.
// Paths are cloned on Add so a recording never changes after the fact.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths  []*gg.Path
	styles []ggtrack.FillStyle
	// last remembers the most recent style so runs of primitives in the
	// same style share one entry.
	last    ggtrack.FillStyle
	lastRef StyleRef
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:  make([]*gg.Path, 0, 64),
		styles: make([]ggtrack.FillStyle, 0, 32),
	}
}

// AddPath adds a copy of path and returns its reference.
func (p *ResourcePool) AddPath(path *gg.Path) PathRef {
	if path != nil {
		path = path.Clone()
	}
	p.paths = append(p.paths, path)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// Path returns the path for ref, or nil if ref is out of range.
func (p *ResourcePool) Path(ref PathRef) *gg.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// AddStyle adds a fill style and returns its reference.
func (p *ResourcePool) AddStyle(style ggtrack.FillStyle) StyleRef {
	if len(p.styles) > 0 && sameStyle(style, p.last) {
		return p.lastRef
	}
	p.styles = append(p.styles, style)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	p.last, p.lastRef = style, StyleRef(uint32(len(p.styles)-1))
	return p.lastRef
}

// Style returns the fill style for ref, or nil if ref is out of range.
func (p *ResourcePool) Style(ref StyleRef) ggtrack.FillStyle {
	if int(ref) >= len(p.styles) {
		return nil
	}
	return p.styles[ref]
}

// StyleCount returns the number of styles in the pool.
func (p *ResourcePool) StyleCount() int {
	return len(p.styles)
}

func sameStyle(a, b ggtrack.FillStyle) bool {
	switch x := a.(type) {
	case ggtrack.Color:
		y, ok := b.(ggtrack.Color)
		return ok && x == y
	case *ggtrack.Pattern:
		y, ok := b.(*ggtrack.Pattern)
		return ok && x == y
	}
	return false
}
