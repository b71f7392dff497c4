package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	. "github.com/JaMo42/stickyboard/common"
	"github.com/JaMo42/stickyboard/interrupt"
	"github.com/JaMo42/stickyboard/tui"
)

const (
	appName    = "stickyboard"
	appVersion = "0.1.0"
)

type Options struct {
	configFile string
	logFile    string
	notes      int
	shrinkLock bool
}

func parseArgs() Options {
	InvocationName = os.Args[0]
	showVersion := false
	var options Options
	flag.StringVar(
		&options.configFile, "config", "",
		"use this config file instead of searching for one",
	)
	flag.StringVar(
		&options.logFile, "log", "",
		"append diagnostics to this file, they are discarded otherwise",
	)
	flag.BoolVar(
		&showVersion, "version", false,
		"show version information",
	)
	flag.IntVar(
		&options.notes, "notes", 1,
		"number of notes to start with",
	)
	flag.BoolVar(
		&options.shrinkLock, "shrink-lock", false,
		"start with shrinking notes disabled",
	)
	flag.Parse()
	if showVersion {
		fmt.Printf("%s %s\n", appName, appVersion)
		os.Exit(0)
	}
	if options.notes < 0 {
		log.Printf("%s: ignoring negative note count %d\n", InvocationName, options.notes)
		options.notes = 0
	}
	return options
}

// configPath returns the path of the config file, if there is one.
func configPath() (string, bool) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if len(configHome) == 0 {
		home := os.Getenv("HOME")
		if len(home) == 0 {
			return "", false
		}
		configHome = fmt.Sprintf("%s/.config", home)
	}
	locations := []string{
		fmt.Sprintf("%s/%s.toml", configHome, appName),
		fmt.Sprintf("%s/%s/config.toml", configHome, appName),
	}
	for _, location := range locations {
		stat, err := os.Stat(location)
		if err == nil && !stat.IsDir() {
			return location, true
		}
	}
	return "", false
}

func main() {
	log.SetFlags(0)
	options := parseArgs()
	var cfg Config
	if len(options.configFile) != 0 {
		cfg = LoadConfig(options.configFile)
	} else if path, found := configPath(); found {
		cfg = LoadConfig(path)
	} else {
		cfg = DefaultConfig()
	}

	logFile, err := RedirectLog(options.logFile)
	if err != nil {
		Fatal("%s", err)
	}
	defer logFile.Close()

	scr := tui.Init(&cfg)
	BeforeExit = scr.Fini
	defer tui.Quit(scr)

	app := NewApp(scr, &cfg)
	defer app.Close()
	interrupt.Begin(app.Post, ActionQuit{})
	defer interrupt.Stop()
	app.Board().SetShrinkLocked(options.shrinkLock)
	for i := 0; i < options.notes; i++ {
		app.NewNote()
	}
	app.Run()
}
