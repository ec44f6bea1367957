package component

// StaticTile is a piece of level geometry. The physics system turns it into a
// static box; OneWay tiles only block from above and can be dropped through.
type StaticTile struct {
	Width  float64
	Height float64
	OneWay bool
}

var StaticTileComponent = NewComponent[StaticTile]()
