package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubeworks/cubeview"
	"github.com/cubeworks/cubeview/internal/predictor"
)

var (
	solveScramble string
	solveMaxSteps int
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a scrambled cube with the move predictor",
	Long: `Scramble a 3x3 cube and let the pretrained move predictor walk it
back to solved, one move at a time. With --scramble the given sequence
is applied instead of a random one.

Examples:
  cubeview solve --model weights.json
  cubeview solve --model weights.json --scramble "R U R' U'"
  cubeview solve --model weights.json --max-steps 20`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Scramble sequence to apply (default: random)")
	solveCmd.Flags().IntVar(&solveMaxSteps, "max-steps", predictor.DefaultMaxSteps, "Maximum predicted moves")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	pred, err := loadPredictor()
	if err != nil {
		return err
	}
	if pred == nil {
		return fmt.Errorf("the solve command needs a move predictor (use --model)")
	}

	cube, err := cubeview.NewCube(3)
	if err != nil {
		return err
	}

	var scrambleText string
	if solveScramble != "" {
		if err := cube.ApplyNotation(solveScramble); err != nil {
			return fmt.Errorf("failed to apply scramble: %w", err)
		}
		scrambleText = solveScramble
	} else {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		scrambleText = cubeview.FormatMoves(cube.Scramble(rng, scrambleMoves))
	}

	fmt.Printf("Scramble: %s\n", scrambleText)

	moves, err := predictor.Solve(cube, pred, predictor.WithMaxSteps(solveMaxSteps))
	if err != nil {
		return fmt.Errorf("failed to solve: %w", err)
	}

	solution := cubeview.FormatMoves(moves)
	for _, m := range moves {
		if err := cube.ApplyMove(m); err != nil {
			return err
		}
	}

	if solution == "" {
		fmt.Println("Already solved")
	} else {
		fmt.Printf("Solution: %s\n", solution)
	}
	if cube.IsSolved() {
		fmt.Printf("Solved in %d moves\n", len(moves))
	} else {
		fmt.Printf("Not solved after %d moves\n", len(moves))
	}
	fmt.Println()
	fmt.Println(cube)

	// Best-effort session log.
	db, sessions, err := openStorage()
	if err != nil {
		if verbose {
			fmt.Printf("warning: session log unavailable: %v\n", err)
		}
		return nil
	}
	defer db.Close()

	id, err := sessions.Create(3, scrambleText)
	if err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	if err := sessions.End(id, solution, cube.IsSolved(), len(moves)); err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	return nil
}
