package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"cli-life/internal/app"
	"cli-life/internal/settings"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	s := settings.DefaultSettings()
	if cfg.Settings != "" {
		loaded, err := settings.Load(cfg.Settings)
		if err != nil {
			log.Fatalf("load settings: %v", err)
		}
		s = loaded
	}
	if err := s.Override(cfg.Overrides.Map()); err != nil {
		log.Fatalf("apply overrides: %v", err)
	}
	if _, err := s.Parameters().WriteTo(os.Stdout); err != nil {
		log.Fatal(err)
	}

	board, err := app.OpenBoard(cfg, s)
	if err != nil {
		log.Fatalf("open board: %v", err)
	}
	log.Printf("running %dx%d board, cell size %d", board.Columns(), board.Rows(), board.CellSize())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := app.New(board, cfg, os.Stdout)
	if err := session.Run(ctx, cfg.Generations); err != nil {
		log.Fatalf("run: %v", err)
	}
	if p := session.StatePath(); p != "" {
		log.Printf("board saved to %s", p)
	}

	if !cfg.Experiment {
		return
	}
	if _, err := app.RunExperiments(os.Stdout, s, cfg.Data); err != nil {
		log.Fatalf("experiments: %v", err)
	}
	if cfg.Data != "" {
		log.Printf("experiment table written to %s", cfg.Data)
	}
}
