// Package cubeview provides an N×N×N Rubik's cube model with exact
// integer rotation state, derived 3D geometry, and quaternion-based
// projection for interactive display.
//
// # Features
//
//   - Sticker-level cube state for any size N ≥ 2
//   - Face/layer rotations as exact integer permutations (undo is bit-for-bit)
//   - Move history with undo-to-solved replay
//   - Drawable quad geometry with canonical centroid ordering
//   - 3D rotate-then-project pipeline preserving depth for draw order
//   - Standard single-letter move notation (R, R', R2, ...)
//
// # Quick Start
//
// Create a cube, turn some faces, and undo back to solved:
//
//	cube, err := cubeview.NewCube(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cube.ApplyNotation("R U R' U'")
//	fmt.Println("Solved:", cube.IsSolved())
//
//	cube.UndoAll()
//	fmt.Println("Solved:", cube.IsSolved()) // true again
//
// # Geometry and Projection
//
// Geometry returns one backing quad and one colored sticker quad per
// sticker, both recomputed from the current state:
//
//	geo := cube.Geometry()
//	rot := cubeview.StartOrientation()
//	pts := cubeview.ProjectPoints(centroids(geo), rot, cubeview.DefaultView, cubeview.DefaultUp)
//
// Projected points carry their depth so callers can paint back-to-front.
//
// # Move Tokens
//
// The 18 canonical outer-layer tokens are indexed in a fixed vocabulary
// order used by the move-predictor boundary:
//
//	R R' R2 U U' U2 F F' F2 D D' D2 B B' B2 L L' L2
//
// Token and MoveFromToken convert between a Move and its vocabulary index.
package cubeview
