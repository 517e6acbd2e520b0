//go:build cgo
// +build cgo

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/appengine-ltd/homestead/internal/gui"
	"github.com/appengine-ltd/homestead/internal/save"
	"github.com/appengine-ltd/homestead/internal/ui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		classic     bool
		savePath    string
		tuningPath  string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&classic, "classic", false, "run the terminal interface instead of the windowed client")
	flag.StringVar(&savePath, "saves", "homestead-saves.db", "path to the save database")
	flag.StringVar(&tuningPath, "tuning", "homestead-tuning.yaml", "path to the tuning overrides file")
	flag.Parse()

	if showVersion {
		fmt.Printf("Homestead %s (%s) %s\n", version, commit, date)
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if classic {
		store, err := save.Open(savePath, logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer store.Close()
		app := ui.NewApp(ui.AppConfig{
			Version:   version,
			Commit:    commit,
			BuildDate: date,
			SavePath:  savePath,
			Slot:      1,
		}, store)
		if err := app.Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	app := gui.NewApp(gui.AppConfig{
		Version:    version,
		Commit:     commit,
		BuildDate:  date,
		SavePath:   savePath,
		TuningPath: tuningPath,
	}, logger)
	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
