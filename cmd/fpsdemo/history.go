package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fpsdemo/internal/platform/tui"
	"github.com/vovakirdan/fpsdemo/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryTUI   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display the most recent runs and the best run of every backend.

Examples:
  fpsdemo history
  fpsdemo history --limit 50
  fpsdemo history --tui`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse the history interactively")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening history database: %v", err)
	}
	defer store.Close()

	if flagHistoryTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	sessions, err := store.RecentSessions(flagHistoryLimit)
	if err != nil {
		store.Close()
		fail("retrieving runs: %v", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'fpsdemo run' to record the first one.")
		return
	}

	fmt.Println("Recent runs")
	fmt.Println()
	fmt.Printf("  %-16s  %-9s  %8s  %7s  %9s  %8s\n", "Date", "Backend", "Frames", "Bounces", "Time", "Avg FPS")
	fmt.Printf("  %-16s  %-9s  %8s  %7s  %9s  %8s\n", "----", "-------", "------", "-------", "----", "-------")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-9s  %8d  %7d  %9s  %8.1f\n",
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			s.Backend,
			s.Frames,
			s.Bounces,
			s.Duration.Round(100*time.Millisecond),
			s.AvgFPS,
		)
	}

	stats, err := store.AllBackendStats()
	if err != nil || len(stats) == 0 {
		return
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println()
	fmt.Println("Best runs")
	fmt.Println()
	for _, name := range names {
		best, err := store.BestSession(name)
		if err != nil || best == nil {
			continue
		}
		st := stats[name]
		fmt.Printf("  %-9s  %8.1f fps  (%d runs, mean %.1f fps)\n", name, best.AvgFPS, st.Runs, st.AvgFPS)
	}
}
