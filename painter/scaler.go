package painter

// Scaler maps a record to a factor in [0, 1]. Painters use scalers for the
// body alpha and for the visual height of thick regions.
type Scaler interface {
	Value(r Record) float64
}

// ConstantScaler scales every record by the same factor.
type ConstantScaler float64

// Value implements Scaler.
func (s ConstantScaler) Value(Record) float64 { return float64(s) }

// scored is implemented by records that carry a score.
type scored interface {
	FeatureScore() float64
}

// ScoreScaler maps a record's score linearly from [Min, Max] onto [0, 1].
// Scores outside the range are clamped. Records without a score and empty
// ranges yield 1.
type ScoreScaler struct {
	Min, Max float64
}

// Value implements Scaler.
func (s ScoreScaler) Value(r Record) float64 {
	sc, ok := r.(scored)
	if !ok || s.Max <= s.Min {
		return 1
	}
	v := (sc.FeatureScore() - s.Min) / (s.Max - s.Min)
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
