package model

// Point is a 2D coordinate on the blueprint grid.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Wall is a straight segment from Start to End drawn with the given thickness.
// IDs are chosen by the client and are not checked for uniqueness.
type Wall struct {
	ID        string  `json:"id"`
	Start     Point   `json:"start"`
	End       Point   `json:"end"`
	Thickness float64 `json:"thickness"`
}

// Project is a named, ordered collection of walls.
// The ID is assigned by the server on creation.
type Project struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Walls []Wall `json:"walls"`
}

// Clone returns a deep copy so callers never share the walls backing array.
// A nil walls slice is normalized to an empty one so it encodes as [].
func (p Project) Clone() Project {
	walls := make([]Wall, len(p.Walls))
	copy(walls, p.Walls)
	p.Walls = walls
	return p
}
