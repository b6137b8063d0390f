package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"resttime/internal/core/render"
	"resttime/internal/core/timekeeper"
	"resttime/internal/platform"
	"resttime/internal/storage"
	"resttime/internal/tui"
)

const (
	appName  = "resttime"
	appTitle = "Rest Time"
	appID    = "com.resttime.app"
)

//nolint:gochecknoglobals // Cobra flag bindings.
var (
	settingsPath  string
	clockFlag     string
	tuiMode       bool
	watchSettings bool
	verbose       bool

	rootCmd = &cobra.Command{
		Use:   appName,
		Short: "A work/rest interval timer.",
		Long: `Counts down alternating work and rest intervals, vibrating (or ringing)
when an interval ends. Space pauses, up starts a rest, down starts work.`,
		SilenceUsage: true,
		RunE:         runFace,
	}

	sendCmd = &cobra.Command{
		Use:       "send <toggle|work|rest|settings>",
		Short:     "Send a command to the running timer",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"toggle", "work", "rest", "settings"},
		RunE:      runSend,
	}

	settingsCmd = &cobra.Command{
		Use:   "settings",
		Short: "Print the persisted interval settings",
		Args:  cobra.NoArgs,
		RunE:  runSettings,
	}
)

//nolint:gochecknoinits // Cobra command wiring.
func init() {
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Settings file (default: user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&clockFlag, "clock", "auto", "Clock style: auto, 12h or 24h")
	rootCmd.Flags().BoolVar(&tuiMode, "tui", false, "Run in the terminal instead of a window")
	rootCmd.Flags().BoolVar(&watchSettings, "watch", false, "Apply edits to the settings file while running")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	}

	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(settingsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runFace(cmd *cobra.Command, _ []string) error {
	style, err := clockStyle(clockFlag)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	config, err := store.Load()
	if err != nil {
		logrus.WithError(err).Warn("load settings, using defaults")
	}
	logrus.WithFields(logrus.Fields{
		"path":          store.Path(),
		"work_interval": config.WorkSeconds,
		"rest_interval": config.RestSeconds,
	}).Debug("settings loaded")

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			return fmt.Errorf("%s is already running; use '%s send' to control it", appName, appName)
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	keeper := timekeeper.New(config, timekeeper.Config{})
	keeper.SetStore(store)
	go guard.Serve(func(line string) error {
		command, err := timekeeper.ParseCommand(line)
		if err != nil {
			return err
		}
		return keeper.HandleCommand(command)
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watchSettings {
		go func() {
			if err := store.Watch(ctx, keeper.Reload); err != nil {
				logrus.WithError(err).Warn("settings watch stopped")
			}
		}()
	}

	if tuiMode {
		keeper.SetHaptics(platform.NewBellHaptics(os.Stderr))
		return tui.Run(ctx, keeper, style)
	}
	return runDesktop(ctx, keeper, style)
}

func runSend(_ *cobra.Command, args []string) error {
	command, err := timekeeper.ParseCommand(args[0])
	if err != nil {
		return err
	}
	return platform.SendCommand(appName, string(command))
}

func runSettings(cmd *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	config, err := store.Load()
	if err != nil {
		return err
	}
	encoded, err := storage.Encode(config)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", store.Path())
	_, err = out.Write(encoded)
	return err
}

func openStore() (*storage.Store, error) {
	if settingsPath != "" {
		return storage.NewStore(settingsPath), nil
	}
	return storage.NewDefaultStore(appName)
}

func clockStyle(value string) (render.ClockStyle, error) {
	if value == "auto" {
		return platform.DetectClockStyle(), nil
	}
	return render.ParseClockStyle(value)
}
