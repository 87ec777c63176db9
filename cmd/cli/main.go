package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/vilacaiz/clubhouse/internal/club"
	"github.com/vilacaiz/clubhouse/internal/config"
	"github.com/vilacaiz/clubhouse/internal/storage"
)

var (
	host     string
	season   string
	dataFile string
)

var rootCmd = &cobra.Command{
	Use:   "clubctl",
	Short: "Manage the club's players, staff, members and finances",
	Long: `A command-line interface over the club data. Commands read and write the
configured store directly; health and metrics query a running server.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.PersistentFlags().StringVar(&season, "season", "", "Season to operate on (defaults to the active season)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "Path of the club data file (overrides CLUB_DATA_FILE)")
}

// openClub loads the configured store. The returned teardown must be called
// once the command is done.
func openClub() (*club.Club, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if cfg.LogLevelSet {
		log.SetLevel(cfg.Level())
	}
	if dataFile != "" {
		cfg.Backend = config.BackendFile
		cfg.DataFile = dataFile
	}
	backend, teardown, err := storage.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	c, err := club.New(backend)
	if err != nil {
		teardown()
		return nil, nil, err
	}
	return c, teardown, nil
}

// withScope runs fn against the season selected by --season.
func withScope(fn func(c *club.Club, sc club.Scope) error) error {
	c, teardown, err := openClub()
	if err != nil {
		return err
	}
	defer teardown()
	sc := c.Active()
	if season != "" {
		if sc, err = c.Season(season); err != nil {
			return err
		}
	}
	return fn(c, sc)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func main() {
	log.SetLevel(log.WarnLevel)
	Execute()
}
