// Package predictor encodes cube state for the pretrained move-prediction
// network and runs the greedy one-move-at-a-time solve loop.
package predictor

import (
	"fmt"

	"github.com/cubeworks/cubeview"
)

// TensorFaces is the face ordering of the state tensor. Together with
// row-major facelet order and the color-channel indices this is the wire
// contract with the pretrained model and must not change.
var TensorFaces = [6]cubeview.Face{
	cubeview.FaceL,
	cubeview.FaceU,
	cubeview.FaceR,
	cubeview.FaceD,
	cubeview.FaceF,
	cubeview.FaceB,
}

// StateSize is the flattened tensor length: 6 faces × 3×3 facelets.
const StateSize = 6 * 3 * 3

// Encode flattens a 3×3×3 cube into the predictor's input tensor: faces
// in TensorFaces order, each face row-major, one float per facelet whose
// value is the sticker's color-channel index.
func Encode(c *cubeview.Cube) ([]float32, error) {
	if c.Size() != 3 {
		return nil, fmt.Errorf("predictor: state tensor requires a 3x3 cube, got %dx%d", c.Size(), c.Size())
	}

	state := make([]float32, 0, StateSize)
	for _, f := range TensorFaces {
		grid := c.Facelets(f)
		for _, row := range grid {
			for _, color := range row {
				state = append(state, float32(color))
			}
		}
	}
	return state, nil
}
