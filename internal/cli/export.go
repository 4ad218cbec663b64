package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeviz/internal/storage"
)

var (
	exportSessionID string
	exportFormat    string
	exportOutput    string
	exportLast      bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export session data",
	Long:  `Export journaled session data in various formats.`,
}

var exportTurnsCmd = &cobra.Command{
	Use:   "turns",
	Short: "Export the turns of a session",
	Long: `Export the turn sequence of a session in text or JSON format.

Examples:
  cubeviz export turns --last
  cubeviz export turns --id <session_id> --format json
  cubeviz export turns --id <session_id> --format txt -o turns.txt`,
	RunE: runExportTurns,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.AddCommand(exportTurnsCmd)
	exportTurnsCmd.Flags().StringVar(&exportSessionID, "id", "", "Session ID to export")
	exportTurnsCmd.Flags().BoolVar(&exportLast, "last", false, "Export the last session")
	exportTurnsCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	exportTurnsCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

// turnJSON is the exported form of one turn.
type turnJSON struct {
	Seq      int    `json:"seq"`
	TsMs     int64  `json:"ts_ms"`
	Face     string `json:"face"`
	Turn     int    `json:"turn"`
	Notation string `json:"notation"`
	Undo     bool   `json:"undo,omitempty"`
}

func runExportTurns(cmd *cobra.Command, args []string) error {
	if exportSessionID == "" && !exportLast {
		return fmt.Errorf("specify --id or --last")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	var ids []string
	if exportSessionID != "" {
		ids = []string{exportSessionID}
	}
	session, err := resolveSession(storage.NewSessionRepository(db), ids, exportLast)
	if err != nil {
		return err
	}

	turns, err := storage.NewTurnRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return fmt.Errorf("failed to get turns: %w", err)
	}
	if len(turns) == 0 {
		return fmt.Errorf("no turns found for session %s", session.SessionID)
	}

	output, err := formatTurns(turns, exportFormat)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if exportOutput == "" {
		fmt.Fprintln(out, output)
		return nil
	}

	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(out, "Exported %d turns to %s\n", len(turns), exportOutput)
	return nil
}

// formatTurns renders turns as space-separated notation or a JSON array.
func formatTurns(turns []storage.TurnRecord, format string) (string, error) {
	switch strings.ToLower(format) {
	case "txt":
		notations := make([]string, len(turns))
		for i, t := range turns {
			notations[i] = t.Notation
		}
		return strings.Join(notations, " "), nil

	case "json":
		out := make([]turnJSON, len(turns))
		for i, t := range turns {
			out[i] = turnJSON{
				Seq:      t.Seq,
				TsMs:     t.TsMs,
				Face:     t.Face,
				Turn:     t.Turn,
				Notation: t.Notation,
				Undo:     t.Undo,
			}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("unknown format: %s (use txt or json)", format)
	}
}
