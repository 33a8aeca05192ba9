// Package cli implements the command-line interface for cubeview.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cubeworks/cubeview/internal/predictor"
	"github.com/cubeworks/cubeview/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath    string
	modelPath string
	verbose   bool

	// Shared by play and scramble
	scrambleMoves int
)

// rootCmd is the base command. Running it without a subcommand opens
// the interactive view, so `cubeview` and `cubeview 4` just work.
var rootCmd = &cobra.Command{
	Use:   "cubeview [N]",
	Short: "Interactive 3D Rubik's cube in the terminal",
	Long: `An interactive 3D Rubik's cube rendered in the terminal.

Rotate the view, turn faces and inner layers, scramble, and let a
pretrained move predictor walk the cube back to solved one move at a
time. Scrambles and solutions are logged to a local SQLite database.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runPlay,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubeview/cubeview.db)")
	rootCmd.PersistentFlags().StringVar(&modelPath, "model", "", "Move predictor weights file (JSON)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output")
}

// parseSizeArg reads the optional cube size argument, defaulting to 3.
func parseSizeArg(args []string) (int, error) {
	if len(args) == 0 {
		return 3, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid cube size %q: %w", args[0], err)
	}
	return n, nil
}

// loadPredictor loads the move predictor named by --model, or returns
// nil when no model was given.
func loadPredictor() (predictor.Predictor, error) {
	if modelPath == "" {
		return nil, nil
	}
	return predictor.LoadNetwork(modelPath)
}

// openStorage opens the session database from --db or the default path.
func openStorage() (*storage.DB, *storage.SessionRepository, error) {
	var (
		db  *storage.DB
		err error
	)
	if dbPath != "" {
		db, err = storage.Open(dbPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, nil, err
	}
	return db, storage.NewSessionRepository(db), nil
}
