package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/arcade/internal/config"
	"github.com/tomz197/arcade/internal/desktop"
	"github.com/tomz197/arcade/internal/kaleido"
	"github.com/tomz197/arcade/internal/loop"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "desktop",
	})

	name := config.GetEnv("ARCADE_APP", loop.ProgramShooter)
	if len(os.Args) > 1 {
		name = os.Args[1]
	}
	scene, err := loop.NewScene(name, config.GetEnvInt("ARCADE_SEED", 0), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Touch steers the ship; on the drawing board it paints.
	touch := desktop.TouchZones
	title := "Space Shooter"
	if _, ok := scene.(*kaleido.Board); ok {
		touch = desktop.TouchPointer
		title = "Kaleidoscope"
	}

	err = desktop.Run(scene, desktop.Options{
		Scale:  int(config.GetEnvInt("DESKTOP_SCALE", 1)),
		Title:  title,
		Touch:  touch,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal("window error", "err", err)
	}
}
