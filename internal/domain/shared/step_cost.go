package shared

// One step is a single forward move or a single quarter turn. Both the time
// and the fuel burned per step depend on the ship's current speed.

const (
	baseStepTimeMs   = 1100
	stepTimePerSpeed = 100
)

// TimeCost returns the milliseconds taken by the given number of steps
func TimeCost(steps, speed int) int {
	return steps * (baseStepTimeMs - speed*stepTimePerSpeed)
}

// FuelCost returns the fuel burned by the given number of steps
func FuelCost(steps, speed int) int {
	return speed * TimeCost(steps, speed)
}

// MillisToSeconds converts a millisecond total to fractional seconds
func MillisToSeconds(ms int) float64 {
	return float64(ms) / 1000.0
}
