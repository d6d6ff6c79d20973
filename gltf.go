package quaternions

import (
	"github.com/qmuntal/gltf"
)

// NodeRotations returns the local rotation of every named node in the glTF document,
// keyed by node name. glTF stores node rotations as unit quaternions in [x, y, z, w]
// order; since text encoding can truncate the coefficients slightly, each rotation is
// renormalized rather than trusted blindly. Nodes without a rotation (an all-zero
// rotation field) map to the identity rotation.
func NodeRotations(doc *gltf.Document) map[string]UnitQuaternionD {

	rotations := map[string]UnitQuaternionD{}

	for _, node := range doc.Nodes {

		if node.Name == "" {
			continue
		}

		r := node.Rotation

		if r[0] == 0 && r[1] == 0 && r[2] == 0 && r[3] == 0 {
			rotations[node.Name] = NewUnitQuaternionIdentity[float64]()
			continue
		}

		rotations[node.Name] = NewQuaternion(
			float64(r[3]), float64(r[0]), float64(r[1]), float64(r[2]),
		).ToUnitQuaternion()

	}

	return rotations

}

// LoadRotations opens the glTF or GLB file at the given path and returns the local
// rotation of every named node in it, keyed by node name.
func LoadRotations(path string) (map[string]UnitQuaternionD, error) {

	doc, err := gltf.Open(path)

	if err != nil {
		return nil, err
	}

	return NodeRotations(doc), nil

}
