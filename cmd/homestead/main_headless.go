//go:build !cgo
// +build !cgo

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

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
		savePath    string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&savePath, "saves", "homestead-saves.db", "path to the save database")
	flag.Parse()

	if showVersion {
		fmt.Printf("Homestead %s (%s) %s\n", version, commit, date)
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// No display stack on this build; the terminal interface is the client.
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
}
