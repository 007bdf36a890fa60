package main

import (
	"fmt"
	"os"
	"pattern-lab/contract"
	"pattern-lab/internal"
	"pattern-lab/moderation"
	"pattern-lab/participant"
	"pattern-lab/runtime"

	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires one broker and three colleagues, then lets each of them greet the others.
func run() error {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	replacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}
	moderator, err := moderation.NewModerator(config.Words(), replacement, log)
	if err != nil {
		return fmt.Errorf("moderator init failed: %w", err)
	}

	// 2. Broker & colleagues
	broker := runtime.NewBroker(log)
	natasha, err := participant.NewPlain("Natasha", broker, os.Stdout)
	if err != nil {
		return err
	}
	petr, err := participant.NewColoured("Petr", broker, os.Stdout, config.Colours)
	if err != nil {
		return err
	}
	ivan, err := participant.NewModerated("Ivan", broker, os.Stdout, moderator)
	if err != nil {
		return err
	}

	colleagues := []contract.Participant{natasha, petr, ivan}
	for _, colleague := range colleagues {
		if err := broker.Register(colleague); err != nil {
			return fmt.Errorf("registering %s failed: %w", colleague.Name(), err)
		}
	}

	// 3. Each colleague greets the others
	for i, colleague := range colleagues {
		if err := colleague.SendMessage(fmt.Sprintf("Hello from colleague %d", i+1)); err != nil {
			return fmt.Errorf("%s could not send: %w", colleague.Name(), err)
		}
	}
	log.Debug("Program stopped cleanly")
	return nil
}
