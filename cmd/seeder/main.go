package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/vilacaiz/clubhouse/internal/club"
	"github.com/vilacaiz/clubhouse/internal/config"
	"github.com/vilacaiz/clubhouse/internal/storage"
)

const defaultFixture = "fixtures/club.yaml"

func main() {
	log.Info("Starting club seeder...")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}
	log.SetLevel(cfg.Level())

	path := defaultFixture
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	fixture, err := loadFixture(path)
	if err != nil {
		log.Fatalf("%s", err)
	}

	backend, teardown, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %s", err)
	}
	defer teardown()

	c, err := club.New(backend)
	if err != nil {
		log.Fatalf("Failed to load club data: %s", err)
	}

	sc, err := seed(c, fixture)
	if err != nil {
		log.Error("Seeding stopped", "fixture", path, "error", err)
		teardown()
		os.Exit(1)
	}

	summary, err := sc.Summary()
	if err != nil {
		log.Fatalf("Failed to summarise seeded season: %s", err)
	}
	log.Info("Seeding complete",
		"season", summary.Season,
		"players", len(fixture.Players),
		"members", summary.Dues.Total,
		"balance", summary.Finance.Balance,
	)
}
