package main

import (
	"github.com/sirupsen/logrus"

	"github.com/minsu/opportunity-finder/internal/api"
	"github.com/minsu/opportunity-finder/internal/catalog"
	"github.com/minsu/opportunity-finder/internal/config"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	raw, err := catalog.LoadSeed()
	if err != nil {
		log.Fatalf("load seed data: %v", err)
	}
	legacy, err := catalog.LoadLegacySources()
	if err != nil {
		log.Fatalf("load legacy sources: %v", err)
	}

	cat := catalog.New(raw)
	log.WithFields(logrus.Fields{
		"opportunities":  cat.Len(),
		"legacy_sources": len(legacy.ChromeExtensions) + len(legacy.RedditTrends) + len(legacy.ProductHunt),
		"env":            cfg.Env,
	}).Info("catalog ready")

	srv := api.NewServer(cat, legacy, cfg, log)
	log.Infof("server starting on port %s", cfg.Port)
	if err := srv.Start(cfg.Port); err != nil {
		log.Fatal(err)
	}
}
