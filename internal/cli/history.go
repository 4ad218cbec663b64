package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeviz"
	"github.com/SeamusWaldron/cubeviz/internal/storage"
)

var (
	historyLimit int
	historyLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled sessions",
	Long:  `Display recent interactive sessions with their turn counts.`,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show the turns of a session",
	Long: `Display a session and every turn committed during it.

Use --last to show the most recent session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of sessions to show")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&historyLast, "last", false, "Show the most recent session")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)
	turnRepo := storage.NewTurnRepository(db)

	sessions, err := sessionRepo.List(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet")
		fmt.Fprintln(out, "Start one with: cubeviz play")
		return nil
	}

	fmt.Fprintf(out, "Recent sessions (showing %d):\n", len(sessions))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-36s  %-20s  %-10s  %-6s  %s\n", "ID", "Started", "Duration", "Turns", "Speed")
	fmt.Fprintln(out, "------------------------------------  --------------------  ----------  ------  -----")

	for _, s := range sessions {
		duration := "-"
		if s.DurationMs != nil {
			duration = formatDuration(time.Duration(*s.DurationMs) * time.Millisecond)
		}

		n, err := turnRepo.Count(s.SessionID)
		if err != nil {
			return err
		}
		turns := "-"
		if n > 0 {
			turns = fmt.Sprintf("%d", n)
		}

		status := ""
		if s.EndedAt == nil {
			status = " (active)"
		}

		fmt.Fprintf(out, "%-36s  %-20s  %-10s  %-6s  %.0f%s\n",
			s.SessionID,
			s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			duration,
			turns,
			s.AnimSpeed,
			status,
		)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := resolveSession(storage.NewSessionRepository(db), args, historyLast)
	if err != nil {
		return err
	}

	turns, err := storage.NewTurnRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session: %s\n", session.SessionID)
	fmt.Fprintf(out, "Started: %s\n", session.StartedAt.Local().Format(time.RFC3339))
	if session.DurationMs != nil {
		fmt.Fprintf(out, "Duration: %s\n", formatDuration(time.Duration(*session.DurationMs)*time.Millisecond))
	} else {
		fmt.Fprintln(out, "Duration: (active)")
	}
	fmt.Fprintf(out, "Speed: %.0f deg/s\n", session.AnimSpeed)
	if session.AppVersion != nil {
		fmt.Fprintf(out, "Version: %s\n", *session.AppVersion)
	}
	fmt.Fprintf(out, "Turns: %d\n", len(turns))

	if len(turns) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-5s  %-10s  %s\n", "Seq", "Time", "Turn")
	for _, t := range turns {
		label := t.Notation
		if t.Undo {
			label += " (undo)"
		}
		fmt.Fprintf(out, "%-5d  %-10s  %s\n", t.Seq, formatDuration(time.Duration(t.TsMs)*time.Millisecond), label)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Sequence: %s\n", cubeviz.FormatMoves(storage.ToMoves(turns, session.StartedAt)))
	return nil
}

// resolveSession picks the session named by args, or the most recent one
// when last is set.
func resolveSession(repo *storage.SessionRepository, args []string, last bool) (*storage.Session, error) {
	var (
		session *storage.Session
		err     error
	)
	switch {
	case last:
		session, err = repo.GetLast()
		if err == nil && session == nil {
			return nil, fmt.Errorf("no sessions found")
		}
	case len(args) > 0:
		session, err = repo.Get(args[0])
		if err == nil && session == nil {
			return nil, fmt.Errorf("session not found: %s", args[0])
		}
	default:
		return nil, fmt.Errorf("please provide a session ID or use --last")
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}
