// Command migrate applies or rolls back the schema migrations.
//
//	migrate up
//	migrate down [steps]
//	migrate status
package main

import (
	"fmt"
	"os"
	"strconv"

	"gaming-zone-booking/internal/infra/db"
	"gaming-zone-booking/internal/pkg/config"

	"github.com/fatih/color"
)

const defaultMigrationsPath = "migrations"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fail(err)
	}

	path := os.Getenv("MIGRATIONS_PATH")
	if path == "" {
		path = defaultMigrationsPath
	}

	switch os.Args[1] {
	case "up":
		if err := db.MigrateUp(cfg.DB, path); err != nil {
			fail(err)
		}
		color.Green("migrations applied")
	case "down":
		steps := 1
		if len(os.Args) > 2 {
			steps, err = strconv.Atoi(os.Args[2])
			if err != nil || steps < 1 {
				fail(fmt.Errorf("invalid step count %q", os.Args[2]))
			}
		}
		if err := db.MigrateDown(cfg.DB, path, steps); err != nil {
			fail(err)
		}
		color.Yellow("rolled back %d migration(s)", steps)
	case "status":
		st, err := db.Status(cfg.DB, path)
		if err != nil {
			fail(err)
		}
		switch {
		case !st.Applied:
			color.Yellow("no migrations applied")
		case st.Dirty:
			color.Red("version %d (dirty)", st.Version)
		default:
			color.Green("version %d", st.Version)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: migrate up | down [steps] | status")
}

func fail(err error) {
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "migrate: %v\n", err)
	os.Exit(1)
}
