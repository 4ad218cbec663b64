package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeviz/internal/recorder"
	"github.com/SeamusWaldron/cubeviz/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and journal information",
	Long:  `Display the config file in use, the effective settings, and a summary of the session journal.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "cubeviz Status")
	fmt.Fprintln(out, "==============")
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Config: %s\n", path)
	fmt.Fprintf(out, "Speed: %.0f deg/s at %d fps\n", cfg.AnimSpeed, cfg.FPS)
	fmt.Fprintf(out, "Log: %s (%s)\n", cfg.LogDir, cfg.LogLevel)
	fmt.Fprintf(out, "Database: %s\n", cfg.DBPath)
	if !cfg.Journal {
		fmt.Fprintln(out, "Journal: disabled")
	}

	db, err := openDB(cfg.DBPath)
	if err == nil {
		defer db.Close()
		printJournal(out, db)
	} else {
		fmt.Fprintf(out, "Database error: %v\n", err)
	}

	fmt.Fprintln(out)

	dir, err := stateDir()
	if err != nil {
		return err
	}
	stateFile, err := recorder.NewStateFile(recorder.StatePath(dir))
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}
	if id := stateFile.LastSessionID(); id != "" {
		fmt.Fprintf(out, "Last played: %s\n", id)
	} else {
		fmt.Fprintln(out, "No sessions played yet")
	}
	return nil
}

// printJournal writes the session summary. Query errors are reported inline
// so the rest of the status still prints.
func printJournal(out io.Writer, db *storage.DB) {
	sessionRepo := storage.NewSessionRepository(db)
	count, err := sessionRepo.Count()
	if err != nil {
		fmt.Fprintf(out, "Database error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Total sessions: %d\n", count)

	last, err := sessionRepo.GetLast()
	if err != nil {
		fmt.Fprintf(out, "Database error: %v\n", err)
		return
	}
	if last == nil {
		return
	}

	turns, err := storage.NewTurnRepository(db).Count(last.SessionID)
	if err != nil {
		fmt.Fprintf(out, "Database error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Last session: %s (%s, %d turns)\n",
		last.SessionID, last.StartedAt.Local().Format(time.RFC3339), turns)
}
