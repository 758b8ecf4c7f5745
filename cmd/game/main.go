package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/arcade/internal/config"
	"github.com/tomz197/arcade/internal/loop"
)

func main() {
	name := config.GetEnv("ARCADE_APP", loop.ProgramShooter)
	if len(os.Args) > 1 {
		name = os.Args[1]
	}

	// The terminal belongs to the game; logs go to a file when asked for.
	logger := log.New(io.Discard)
	if path := config.GetEnv("ARCADE_LOG", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade",
			Level:           log.DebugLevel,
		})
	}

	scene, err := loop.NewScene(name, config.GetEnvInt("ARCADE_SEED", 0), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	logger.Info("session started", "program", name)
	c := loop.NewClient(scene, bufio.NewReader(os.Stdin), os.Stdout, loop.ClientOptions{
		Logger: logger,
		Mouse:  config.GetEnvBool("ARCADE_MOUSE", true),
	})
	if err := c.Run(context.Background()); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("session ended", "program", name)
}
