package simulation

// AllocationOutcome reports how dock allocation ended
type AllocationOutcome int

const (
	// AllocationOK means the tank never goes negative
	AllocationOK AllocationOutcome = iota
	// AllocationDockTooLate means the ship runs dry before reaching a dock
	AllocationDockTooLate
	// AllocationOutOfDocks means the docks cannot cover the fuel deficit
	AllocationOutOfDocks
)

func (o AllocationOutcome) String() string {
	switch o {
	case AllocationOK:
		return "ok"
	case AllocationDockTooLate:
		return "dock_too_late"
	case AllocationOutOfDocks:
		return "out_of_docks"
	}
	return "unknown"
}

// Allocation is the result of AllocateFuel
type Allocation struct {
	Outcome   AllocationOutcome
	Deficit   int
	FinalFuel int
	Docks     int
}

// Feasible reports whether the allocation closed the deficit
func (a Allocation) Feasible() bool {
	return a.Outcome == AllocationOK
}

// AllocateFuel rewrites the dock durations of a replayed route so the tank
// never drops below zero, docking as little as possible.
//
// Docks are filled greedily in visitation order. Each dock lasts at least
// minDwellMs and transfers no more than the planet holds or the tank can
// take. Docks after the deficit is closed keep the minimum dwell.
//
// The simulator must have just replayed a route. Later commands are not
// re-executed, only the fuel balance is shifted.
func AllocateFuel(sim *Simulator, maxFuel, minDwellMs int) Allocation {
	docks := sim.Docks()
	ship := sim.Game().Ship()

	// Arrival fuel as if no earlier dock had transferred anything
	baseline := make([]int, len(docks))
	provisional := 0
	for i, dock := range docks {
		baseline[i] = dock.ShipFuelOnArrival() - provisional
		provisional += dock.Transferred()
	}
	for i := len(docks) - 1; i >= 0; i-- {
		docks[i].Undo()
	}

	deficit := max(0, -ship.Fuel)
	result := Allocation{Deficit: deficit, Docks: len(docks)}
	accounted := 0

	for i, dock := range docks {
		arrival := baseline[i] + accounted
		if arrival < 0 {
			result.Outcome = AllocationDockTooLate
			result.FinalFuel = ship.Fuel
			return result
		}
		available := max(0, min(dock.Planet().Fuel, maxFuel-arrival))

		// Fuel gained beyond the deficit during a forced minimum dwell is not
		// credited
		fuel := 0
		if need := deficit - accounted; need > 0 {
			fuel = min(available, need)
		}
		duration := max(fuel, minDwellMs)

		dock.PostAlterDuration(duration, fuel)
		accounted += fuel
	}

	result.FinalFuel = ship.Fuel
	if ship.Fuel < 0 {
		result.Outcome = AllocationOutOfDocks
		return result
	}
	result.Outcome = AllocationOK
	return result
}

// EnsureMinimumDwell raises every dock shorter than minDwellMs to minDwellMs,
// keeping its fuel transfer. Used to make fallback output well-formed.
func EnsureMinimumDwell(sim *Simulator, minDwellMs int) {
	for _, dock := range sim.Docks() {
		if dock.DurationMs() < minDwellMs || !dock.applied {
			dock.PostAlterDuration(max(dock.DurationMs(), minDwellMs), dock.Transferred())
		}
	}
}
