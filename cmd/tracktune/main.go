package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/fx"

	"github.com/joeri-hu/tracktune/internal/app"
	"github.com/joeri-hu/tracktune/internal/paths"
)

func main() {
	rigFlag := flag.String("rig", "", "rig name (defaults to \"default\")")
	dbFlag := flag.Bool("db", false, "persist settings in SQLite instead of TOML")
	flag.Parse()

	rig := paths.Resolve(*rigFlag)
	if err := paths.ValidateName(rig); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so fx must not write to it.
	fxApp := fx.New(
		app.Module(app.Params{Rig: rig, UseDB: *dbFlag}),
		fx.NopLogger,
	)

	fxApp.Run()
}
