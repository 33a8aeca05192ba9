package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded sessions",
	Long:  `List recent scramble and solve sessions from the local database.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum sessions to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, sessions, err := openStorage()
	if err != nil {
		return err
	}
	defer db.Close()

	list, err := sessions.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(list) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tSIZE\tSOLVED\tSTEPS\tSCRAMBLE\tSOLUTION")
	for _, s := range list {
		scramble := ""
		if s.ScrambleText != nil {
			scramble = *s.ScrambleText
		}
		solution := ""
		if s.SolutionText != nil {
			solution = *s.SolutionText
		}
		solved := "no"
		if s.Solved {
			solved = "yes"
		}
		fmt.Fprintf(w, "%s\t%dx%d\t%s\t%d\t%s\t%s\n",
			s.StartedAt.Format("2006-01-02 15:04:05"),
			s.CubeSize, s.CubeSize,
			solved, s.Steps, scramble, solution)
	}
	return w.Flush()
}
