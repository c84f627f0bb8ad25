package features

// ToPercent converts a fractional ratio to a percentage. Absence propagates:
// nil in, nil out.
func ToPercent(v *float64) *float64 {
	if v == nil {
		return nil
	}
	p := *v * 100
	return &p
}
