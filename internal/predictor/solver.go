package predictor

import "github.com/cubeworks/cubeview"

// DefaultMaxSteps bounds the greedy solve loop. The predictor emits one
// move per step with no backtracking, so a cube it cannot solve within
// the cap is abandoned rather than looped on forever.
const DefaultMaxSteps = 10

// Option configures the solve loop.
type Option func(*config)

type config struct {
	maxSteps int
}

// WithMaxSteps overrides the step cap.
func WithMaxSteps(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxSteps = n
		}
	}
}

// Solve plans a move sequence for the cube using one predictor call per
// step, stopping early when the planning copy reaches the solved state
// or the step cap is hit. The input cube is never mutated; the caller
// applies the returned moves.
//
// Returned moves may include half turns; applying them through the
// notation path decomposes each into two recorded quarter turns.
func Solve(c *cubeview.Cube, p Predictor, opts ...Option) ([]cubeview.Move, error) {
	cfg := config{maxSteps: DefaultMaxSteps}
	for _, opt := range opts {
		opt(&cfg)
	}

	work := c.Clone()
	moves := make([]cubeview.Move, 0, cfg.maxSteps)

	for step := 0; step < cfg.maxSteps; step++ {
		if work.IsSolved() {
			break
		}

		state, err := Encode(work)
		if err != nil {
			return nil, err
		}
		m, err := p.Predict(state)
		if err != nil {
			return nil, err
		}

		if err := work.ApplyMove(m); err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}

	return moves, nil
}
