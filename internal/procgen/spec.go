// Package procgen plans procedural structures as lists of actors to spawn.
// Planners are pure: they compute names, transforms and meshes, and the
// caller turns each spec into an engine spawn command. All distances are in
// engine units (centimeters); the basic shape meshes are 100 units across,
// so scale = size/100.
package procgen

// Basic shape meshes shipped with the engine.
const (
	MeshCube     = "/Engine/BasicShapes/Cube.Cube"
	MeshCylinder = "/Engine/BasicShapes/Cylinder.Cylinder"
	MeshSphere   = "/Engine/BasicShapes/Sphere.Sphere"
	MeshCone     = "/Engine/BasicShapes/Cone.Cone"
)

// Vec3 is an XYZ triple, serialized as a JSON array.
type Vec3 [3]float64

// Color is an RGBA tuple with components in [0,1].
type Color [4]float64

// SpawnSpec describes one static mesh actor to spawn.
type SpawnSpec struct {
	Name     string
	Location Vec3
	Rotation *Vec3
	Scale    *Vec3
	Mesh     string
	// Color, when set, is applied to the spawned actor's material after
	// the spawn command succeeds.
	Color *Color
}

func block(name string, mesh string, loc Vec3, scale Vec3) SpawnSpec {
	s := scale
	return SpawnSpec{Name: name, Location: loc, Scale: &s, Mesh: mesh}
}

func rotatedBlock(name string, mesh string, loc Vec3, rot Vec3, scale Vec3) SpawnSpec {
	s := scale
	r := rot
	return SpawnSpec{Name: name, Location: loc, Rotation: &r, Scale: &s, Mesh: mesh}
}

func uniform(v float64) Vec3 {
	return Vec3{v, v, v}
}
