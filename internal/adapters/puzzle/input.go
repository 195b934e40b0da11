package puzzle

// Input is a puzzle document as delivered by the game host
type Input struct {
	MapSize  int         `json:"mapsize" yaml:"mapsize"`
	Fuel     int         `json:"fuel" yaml:"fuel"`
	Speed    int         `json:"speed" yaml:"speed"`
	MaxSpeed int         `json:"max_speed" yaml:"max_speed"`
	MaxFuel  int         `json:"max_fuel" yaml:"max_fuel"`
	Items    []ItemInput `json:"items" yaml:"items"`
}

// ItemInput locates one item by its Manhattan distance to the satellites
type ItemInput struct {
	Name      string     `json:"name" yaml:"name"`
	Fuel      int        `json:"fuel" yaml:"fuel"`
	Distances []Distance `json:"distances" yaml:"distances"`
}

// Distance is the Manhattan distance from an item to one satellite
type Distance struct {
	SatelliteName string `json:"SatelliteName" yaml:"SatelliteName"`
	Distance      int    `json:"Distance" yaml:"Distance"`
}

// Output is the command document handed back to the game host
type Output struct {
	Commands []string `json:"Commands"`
}
