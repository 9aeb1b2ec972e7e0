// Package cigar decodes CIGAR alignment strings for drawing.
//
// A CIGAR string is a run of <length><op> pairs drawn from the alphabet
// "MIDNSHP=X". Decoding yields the operations themselves (as biogo sam
// operations, whose type values are the alphabet positions) and the
// contiguous reference-space blocks a read covers, split at skips (N).
//
// Decoding is lenient: tokens that are not <digits><op> are dropped.
package cigar

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/biogo/hts/sam"

	"github.com/gogpu/ggtrack/interval"
)

// Alphabet lists the operation characters in sam.CigarOpType order.
const Alphabet = "MIDNSHP=X"

// maxOpLen is the largest length a sam.CigarOp can hold.
const maxOpLen = 1<<28 - 1

var tokenRE = regexp.MustCompile(`[0-9]+[MIDNSHP=X]`)

// Decoded is the result of Parse.
type Decoded struct {
	// Blocks are the drawable read-local intervals. There is always at
	// least one block; the first starts as [0, 0].
	Blocks []interval.Interval

	// Cigar holds the recognized operations in input order.
	Cigar sam.Cigar
}

// Parse decodes s.
//
// Match, deletion, sequence match and mismatch (M D = X) extend the current
// block. A skip (N) advances the reference offset and starts a new block if
// the current one is non-empty; an empty block is moved instead of split.
// I, S, H and P leave the blocks untouched.
func Parse(s string) Decoded {
	blocks := []interval.Interval{{}}
	cur := 0
	base := 0

	tokens := tokenRE.FindAllString(s, -1)
	ops := make(sam.Cigar, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok[:len(tok)-1])
		if err != nil || n > maxOpLen {
			continue
		}
		t := sam.CigarOpType(strings.IndexByte(Alphabet, tok[len(tok)-1]))

		switch t {
		case sam.CigarSkipped:
			base += n
			if blocks[cur].Len() > 0 {
				blocks = append(blocks, interval.New(base, base))
				cur++
			} else {
				blocks[cur] = interval.New(base, base)
			}
		case sam.CigarMatch, sam.CigarDeletion, sam.CigarEqual, sam.CigarMismatch:
			blocks[cur].End += n
			base += n
		}
		ops = append(ops, sam.NewCigarOp(t, n))
	}
	return Decoded{Blocks: blocks, Cigar: ops}
}

// Char returns the alphabet character of op.
func Char(op sam.CigarOp) byte {
	t := int(op.Type())
	if t < 0 || t >= len(Alphabet) {
		return '?'
	}
	return Alphabet[t]
}

// State is the running position of a walk over a CIGAR.
type State struct {
	// BaseOffset counts reference bases consumed (M D N = X).
	BaseOffset int
	// SeqOffset counts read bases consumed (M I S = X).
	SeqOffset int
}

// Step returns the state after op.
func (s State) Step(op sam.CigarOp) State {
	c := op.Type().Consumes()
	s.BaseOffset += c.Reference * op.Len()
	s.SeqOffset += c.Query * op.Len()
	return s
}

// Walk calls fn for each operation with the state before it and returns the
// final state.
func Walk(c sam.Cigar, fn func(op sam.CigarOp, at State)) State {
	var s State
	for _, op := range c {
		if fn != nil {
			fn(op, s)
		}
		s = s.Step(op)
	}
	return s
}

// String renders c back to CIGAR text.
func String(c sam.Cigar) string {
	var b strings.Builder
	for _, op := range c {
		b.WriteString(strconv.Itoa(op.Len()))
		b.WriteByte(Char(op))
	}
	return b.String()
}
