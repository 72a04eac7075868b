// Command bitboard builds a 32 bit mask interactively.
//
// Type a square index (0-31) to toggle it, or "done" to print the mask.
package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/astef/bitboard"
	"github.com/astef/bitboard/internal/config"
	"github.com/astef/bitboard/internal/term"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("bitboard: %v", err)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.LogLevel)

	colored := term.Enabled(cfg.Color, os.Stdout)
	session := bitboard.NewSession(
		bitboard.WithHighlighter(term.NewHighlighter(colored)),
		bitboard.WithLogger(log),
	)

	if _, err := session.Run(context.Background(), os.Stdin, term.Output(os.Stdout, colored)); err != nil {
		log.WithError(err).Error("session aborted")
		config.Exitf("bitboard: %v", err)
	}
}
