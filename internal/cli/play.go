package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeviz"
	"github.com/SeamusWaldron/cubeviz/internal/log"
	"github.com/SeamusWaldron/cubeviz/internal/recorder"
	"github.com/SeamusWaldron/cubeviz/internal/tui"
)

var (
	playSpeed  float64
	playNoSave bool
	playYaw    int
	playPitch  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn the cube interactively",
	Long: `Start the interactive cube view.

Keyboard shortcuts:
  u d l r f b   - Turn a face clockwise
  U D L R F B   - Turn a face counter-clockwise
  z             - Undo the last turn
  x             - Reset to a solved cube
  arrows        - Rotate the viewpoint
  mouse drag    - Orbit the viewpoint
  q/Esc         - Quit

Keys pressed while a turn is animating are ignored.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Float64Var(&playSpeed, "speed", 0, "Animation speed in degrees per second (overrides config)")
	playCmd.Flags().BoolVar(&playNoSave, "no-journal", false, "Do not journal turns")
	playCmd.Flags().IntVar(&playYaw, "yaw", 0, "Initial viewpoint quarter turns about the vertical axis (overrides config)")
	playCmd.Flags().IntVar(&playPitch, "pitch", 0, "Initial viewpoint quarter turns about the horizontal axis (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("speed") {
		cfg.AnimSpeed = playSpeed
	}
	if cmd.Flags().Changed("yaw") {
		cfg.View.Yaw = playYaw
	}
	if cmd.Flags().Changed("pitch") {
		cfg.View.Pitch = playPitch
	}
	if playNoSave {
		cfg.Journal = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := log.NewFileLogger(cfg.LogLevel, cfg.LogDir)
	if err != nil {
		return err
	}
	defer closer.Close()

	journal, cleanup, err := startJournal(cfg.DBPath, cfg.AnimSpeed, cfg.Journal, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	engine := cubeviz.NewEngine(
		cubeviz.WithSpeed(cfg.AnimSpeed),
		cubeviz.WithCommitCallback(func(c cubeviz.Commit) {
			logger.WithFields(map[string]interface{}{
				"move": c.Move.Notation(),
				"undo": c.Undo,
			}).Infof("turn committed")
			if journal == nil {
				return
			}
			if err := journal.Record(c); err != nil {
				logger.Errorf("%v", err)
			}
		}),
	)
	engine.Tracker().SetSolvedCallback(func(moves int) {
		logger.WithField("moves", moves).Infof("cube solved")
	})

	view := tui.NewView().
		TurnN(cubeviz.AxisY, cfg.View.Yaw).
		TurnN(cubeviz.AxisX, cfg.View.Pitch)

	model := tui.New(engine,
		tui.WithInterval(cfg.FrameInterval()),
		tui.WithView(view),
		tui.WithLogger(logger),
	)

	logger.WithFields(map[string]interface{}{
		"speed": cfg.AnimSpeed,
		"fps":   cfg.FPS,
	}).Infof("starting interactive session")

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	if journal != nil {
		if err := journal.End(time.Now()); err != nil {
			logger.Warnf("%v", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Session %s: %d turns journaled\n", journal.SessionID(), journal.TurnCount())
	}
	return nil
}

// startJournal opens the database and starts a session. When journaling is
// disabled it returns a nil journal.
func startJournal(path string, speed float64, enabled bool, logger log.Logger) (*recorder.Journal, func(), error) {
	if !enabled {
		return nil, func() {}, nil
	}

	dir, err := stateDir()
	if err != nil {
		return nil, nil, err
	}
	stateFile, err := recorder.NewStateFile(recorder.StatePath(dir))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load state: %w", err)
	}

	db, err := openDB(path)
	if err != nil {
		return nil, nil, err
	}

	if err := stateFile.SetDBPath(db.Path()); err != nil {
		logger.Warnf("failed to update state file: %v", err)
	}

	journal := recorder.NewJournal(db, stateFile, logger)
	if _, err := journal.Start(time.Now(), speed, version); err != nil {
		db.Close()
		return nil, nil, err
	}
	return journal, func() { db.Close() }, nil
}
