package models

// Mode selects which field family the chart plots.
type Mode string

const (
	ModeAmount Mode = "amount"
	ModeRatio  Mode = "ratio"
)

// IsValidMode returns true if m is a supported mode.
func IsValidMode(m Mode) bool {
	switch m {
	case ModeAmount, ModeRatio:
		return true
	default:
		return false
	}
}

// DefaultMode returns the default plotting mode.
func DefaultMode() Mode { return ModeAmount }

// NormalizeMode converts a raw string to a valid mode (or default).
func NormalizeMode(s string) Mode {
	if s == "" {
		return DefaultMode()
	}
	m := Mode(s)
	if IsValidMode(m) {
		return m
	}
	return DefaultMode()
}

// ActiveFields returns the field set plotted for the mode.
func (m Mode) ActiveFields() []string {
	if m == ModeRatio {
		return RatioFields
	}
	return AmountFields
}
