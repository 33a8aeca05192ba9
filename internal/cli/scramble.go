package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubeworks/cubeview"
)

var scrambleSeed int64

var scrambleCmd = &cobra.Command{
	Use:   "scramble [N]",
	Short: "Print a random scramble",
	Long: `Generate a random scramble, print the move sequence and the
resulting cube as an unfolded net.

Examples:
  cubeview scramble
  cubeview scramble 4 --moves 12
  cubeview scramble --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScramble,
}

func init() {
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 = time-based)")
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	n, err := parseSizeArg(args)
	if err != nil {
		return err
	}

	cube, err := cubeview.NewCube(n)
	if err != nil {
		return err
	}

	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	moves := cube.Scramble(rng, scrambleMoves)
	text := cubeview.FormatMoves(moves)

	fmt.Printf("Scramble: %s\n\n", text)
	fmt.Println(cube)

	// Best-effort session log so `cubeview history` sees it.
	db, sessions, err := openStorage()
	if err != nil {
		if verbose {
			fmt.Printf("warning: session log unavailable: %v\n", err)
		}
		return nil
	}
	defer db.Close()

	id, err := sessions.Create(n, text)
	if err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	if verbose {
		fmt.Printf("Session: %s\n", id)
	}
	return nil
}
