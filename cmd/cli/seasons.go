package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vilacaiz/clubhouse/internal/club"
	"github.com/vilacaiz/clubhouse/internal/config"
	"github.com/vilacaiz/clubhouse/internal/storage"
)

var seasonCmd = &cobra.Command{
	Use:   "season",
	Short: "List, create and switch seasons",
}

var seasonListCmd = &cobra.Command{
	Use:   "list",
	Short: "List seasons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withScope(func(c *club.Club, _ club.Scope) error {
			t := newTable(cmd.OutOrStdout(), "LABEL", "START", "END", "ACTIVE", "NOTES")
			for _, s := range c.ListSeasons() {
				active := ""
				if s.IsActive {
					active = "*"
				}
				t.row(s.Label, s.StartDate.String(), s.EndDate.String(), active, s.Notes)
			}
			return t.flush()
		})
	},
}

var seasonCreateCmd = &cobra.Command{
	Use:   "create LABEL",
	Short: "Create a season",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := dateFlag(cmd, "start")
		if err != nil {
			return err
		}
		end, err := dateFlag(cmd, "end")
		if err != nil {
			return err
		}
		notes, _ := cmd.Flags().GetString("notes")
		activate, _ := cmd.Flags().GetBool("activate")
		return withScope(func(c *club.Club, _ club.Scope) error {
			s, err := c.CreateSeason(club.SeasonInput{Label: args[0], StartDate: start, EndDate: end, Notes: notes})
			if err != nil {
				return err
			}
			if activate {
				if _, err := c.SetActive(s.Label); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Season %s created\n", s.Label)
			return nil
		})
	},
}

var seasonActivateCmd = &cobra.Command{
	Use:   "activate LABEL",
	Short: "Make a season the active one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withScope(func(c *club.Club, _ club.Scope) error {
			s, err := c.SetActive(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active season is now %s\n", s.Label)
			return nil
		})
	},
}

var seasonUpdateCmd = &cobra.Command{
	Use:   "update LABEL",
	Short: "Change a season's dates or notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch club.SeasonPatch
		var err error
		if patch.StartDate, err = changedDate(cmd, "start"); err != nil {
			return err
		}
		if patch.EndDate, err = changedDate(cmd, "end"); err != nil {
			return err
		}
		patch.Notes = changedString(cmd, "notes")
		return withScope(func(c *club.Club, _ club.Scope) error {
			s, err := c.UpdateSeason(args[0], patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Season %s updated (%s to %s)\n", s.Label, s.StartDate, s.EndDate)
			return nil
		})
	},
}

var seasonDeleteCmd = &cobra.Command{
	Use:   "delete LABEL",
	Short: "Delete an empty, inactive season",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withScope(func(c *club.Club, _ club.Scope) error {
			if err := c.DeleteSeason(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Season %s deleted\n", args[0])
			return nil
		})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved revisions of the club document (sqlite backend)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		backend, teardown, err := storage.Open(cfg)
		if err != nil {
			return err
		}
		defer teardown()
		sqlBackend, ok := backend.(*storage.SQLBackend)
		if !ok {
			return errors.New("revision history needs CLUB_BACKEND=sqlite")
		}
		limit, _ := cmd.Flags().GetInt("limit")
		revisions, err := sqlBackend.Revisions(limit)
		if err != nil {
			return err
		}
		t := newTable(cmd.OutOrStdout(), "REVISION", "SAVED AT", "BYTES")
		for _, r := range revisions {
			t.row(fmt.Sprint(r.ID), r.SavedAt.Format("2006-01-02 15:04:05"), itoa(r.Size))
		}
		return t.flush()
	},
}

func init() {
	seasonCreateCmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	seasonCreateCmd.Flags().String("end", "", "End date (YYYY-MM-DD)")
	seasonCreateCmd.Flags().String("notes", "", "Notes")
	seasonCreateCmd.Flags().Bool("activate", false, "Make the new season active")
	seasonUpdateCmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	seasonUpdateCmd.Flags().String("end", "", "End date (YYYY-MM-DD)")
	seasonUpdateCmd.Flags().String("notes", "", "Notes")
	historyCmd.Flags().Int("limit", 20, "Number of revisions to show")

	seasonCmd.AddCommand(seasonListCmd, seasonCreateCmd, seasonActivateCmd, seasonUpdateCmd, seasonDeleteCmd)
	rootCmd.AddCommand(seasonCmd, historyCmd)
}
