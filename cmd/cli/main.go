package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/minaorangina/spacepalace/engine"
)

func main() {
	cfg, err := engine.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("could not load config")
	}

	// the board is drawn on stdout, so keep the log quiet unless asked
	logger := cfg.NewLogger()
	logger.SetOutput(os.Stderr)
	if os.Getenv("SPACE_PALACE_LOG_LEVEL") == "" {
		logger.SetLevel(logrus.WarnLevel)
	}

	ge, err := engine.NewGameEngine(engine.GameEngineOpts{
		GameID:        "cli",
		ComputerDelay: cfg.ComputerDelay,
		SafetyTimeout: cfg.SafetyTimeout,
		Seed:          cfg.Seed,
		Logger:        logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("could not create game")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ge.Listen(ctx)

	player := engine.NewCLIPlayer(engine.NewID(), os.Stdout)
	if err := ge.AddPlayer(player); err != nil {
		logger.WithError(err).Fatal("could not join game")
	}
	player.Help()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return
		case "help":
			player.Help()
			continue
		}

		msg, err := player.Parse(line)
		if err != nil {
			fmt.Fprintf(os.Stdout, "! %s\n", err)
			continue
		}
		ge.Receive(msg)
	}
}
