package core

// VisualKind identifies what a visual represents in the scene.
type VisualKind int

const (
	VisualPlayer VisualKind = iota
	VisualObstacle
)

// Handle is an opaque reference to a visual owned by the scene.
// The zero Handle never refers to a live visual.
type Handle uint64
