package train

// Schedule maps a zero-based step index and the total step count to a
// learning rate. Implementations must be pure: same inputs, same rate.
type Schedule func(step, total int) float64

// ConstantLR returns a schedule pinning the rate to v for every step.
// Panics unless v > 0.
func ConstantLR(v float64) Schedule {
	if v <= 0 {
		panic("train: ConstantLR(v<=0)")
	}
	return func(int, int) float64 {
		return v
	}
}

// LinearDecay interpolates from start at step 0 toward end at step
// total; with zero-based steps the final applied rate is one increment
// short of end, matching the classic 1.0 − 0.9·k/total ramp.
// Panics unless 0 <= end <= start and start > 0.
func LinearDecay(start, end float64) Schedule {
	if start <= 0 || end < 0 || end > start {
		panic("train: LinearDecay requires 0 <= end <= start, start > 0")
	}
	return func(step, total int) float64 {
		if total <= 1 {
			return start
		}

		return start + (end-start)*float64(step)/float64(total)
	}
}
