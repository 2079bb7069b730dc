package main

import (
	"checkers/config"
	"checkers/experiments"
	"checkers/ui"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const logFile = "checkers/log.txt"

func main() {
	configPath := flag.String("config", "", "Settings file (default: searched in the XDG config directories)")
	experiment := flag.String("experiment", "", "Run a bot experiment instead of a game: "+strings.Join(experiments.Names(), ", "))
	level := flag.String("log-level", "info", "Log level")
	logPath := flag.String("log-file", "", "Log file (default: in the XDG state directory)")
	writeConfig := flag.Bool("write-config", false, "Write the effective settings to the config file and exit")
	flag.Parse()

	if *experiment != "" {
		setupLogging(os.Stderr, *level, true)
		run, ok := experiments.Registry[*experiment]
		if !ok {
			log.Fatal().Msgf("unknown experiment %q, expected one of %v", *experiment, experiments.Names())
		}
		if err := run(); err != nil {
			log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
		}
		return
	}

	// The terminal belongs to the board, so logs go to a file.
	out, err := openLog(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer out.Close()
	setupLogging(out, *level, false)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load settings")
	}
	if *writeConfig {
		if err := cfg.Save(*configPath); err != nil {
			log.Fatal().Err(err).Msg("failed to write settings")
		}
		return
	}

	if err := ui.NewApp(*cfg).Run(); err != nil {
		log.Fatal().Err(err).Msg("terminal ui failed")
	}
}

func setupLogging(w io.Writer, level string, console bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	if console {
		w = zerolog.ConsoleWriter{Out: w}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

func openLog(path string) (*os.File, error) {
	if path == "" {
		p, err := xdg.StateFile(logFile)
		if err != nil {
			return nil, fmt.Errorf("failed to locate log file: %w", err)
		}
		path = p
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
