package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubesolve/cubesolve/internal/history"
	"github.com/cubesolve/cubesolve/internal/notation"
)

var (
	historyListLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect previously recorded solves",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solves",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [solve-id]",
	Short: "Show a recorded solve in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)

	historyListCmd.Flags().IntVar(&historyListLimit, "limit", 20, "Maximum number of solves to display")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openHistoryDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := history.NewRepository(db)
	solves, err := repo.List(historyListLimit)
	if err != nil {
		return fmt.Errorf("failed to list solves: %w", err)
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println("Solve one with: cubesolve solve --random 25")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %-9s  %-5s  %-5s  %s\n", "ID", "Solved", "Algorithm", "Moves", "Nodes", "Time")
	for _, s := range solves {
		fmt.Printf("%-36s  %-20s  %-9s  %-5d  %-5d  %dms\n",
			s.ID, s.SolvedAt.Format("2006-01-02 15:04:05"), s.Algorithm,
			s.MoveCount, s.ExpandedNodes, s.ElapsedMs)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openHistoryDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := history.NewRepository(db)
	s, err := repo.Get(args[0])
	if err != nil {
		return fmt.Errorf("failed to get solve: %w", err)
	}
	if s == nil {
		return fmt.Errorf("no solve with ID %q", args[0])
	}

	fmt.Println(titleStyle.Render("Solve " + s.ID))
	fmt.Printf("Solved:    %s\n", s.SolvedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Algorithm: %s\n", s.Algorithm)
	fmt.Printf("Scramble:  %s\n", notation.FormatSequence(s.ScrambleMoves))
	fmt.Println(moveStyle.Render("Solution:  " + notation.FormatSequence(s.SolutionMoves)))
	fmt.Printf("Stats:     %d moves, %d nodes expanded, %d iterations, %dms\n",
		s.MoveCount, s.ExpandedNodes, s.Iterations, s.ElapsedMs)
	return nil
}
