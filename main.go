package main

import (
	"fmt"
	"os"

	"boardgames/config"
	"boardgames/experiments"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load(config.Flags(os.Args[0]), os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := config.SetupLogger(cfg.LogLevel, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	x := experiments.FromConfig(cfg)
	var dir string
	switch cfg.Experiment {
	case "ladder":
		dir, err = x.RunDifficultyLadder()
	case "pruning":
		dir, err = x.RunPruningComparison()
	default:
		white, black := cfg.Difficulties()
		dir, err = x.RunSelfPlay(white, black)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", cfg.Experiment)
	}
	log.Info().Msgf("results written to %s", dir)
}
