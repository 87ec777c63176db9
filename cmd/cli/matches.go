package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vilacaiz/clubhouse/internal/club"
	"github.com/vilacaiz/clubhouse/internal/models"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Plan fixtures and line-ups",
}

var matchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List match plans in kick-off order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		squad, _ := cmd.Flags().GetString("squad")
		return withScope(func(_ *club.Club, sc club.Scope) error {
			plans, err := sc.MatchPlans().List(club.MatchPlanFilter{Squad: models.Squad(squad)})
			if err != nil {
				return err
			}
			t := newTable(cmd.OutOrStdout(), "ID", "DATE", "KICKOFF", "SQUAD", "OPPONENT", "VENUE", "STARTERS", "SUBS")
			for _, mp := range plans {
				t.row(itoa(mp.ID), mp.MatchDate.String(), mp.KickoffTime, string(mp.Squad), mp.Opponent, mp.Venue,
					joinIDs(mp.Starters), joinIDs(mp.Substitutes))
			}
			return t.flush()
		})
	},
}

var matchAddCmd = &cobra.Command{
	Use:   "add DATE KICKOFF OPPONENT",
	Short: "Plan a match",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := models.ParseDate(args[0])
		if err != nil {
			return err
		}
		in := club.MatchPlanInput{MatchDate: date, KickoffTime: args[1], Opponent: args[2]}
		squad, _ := cmd.Flags().GetString("squad")
		in.Squad = models.Squad(squad)
		in.Venue, _ = cmd.Flags().GetString("venue")
		in.Competition, _ = cmd.Flags().GetString("competition")
		in.Notes, _ = cmd.Flags().GetString("notes")
		starters, _ := cmd.Flags().GetString("starters")
		if in.Starters, err = idList(starters); err != nil {
			return fmt.Errorf("--starters: %w", err)
		}
		subs, _ := cmd.Flags().GetString("subs")
		if in.Substitutes, err = idList(subs); err != nil {
			return fmt.Errorf("--subs: %w", err)
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			mp, err := sc.MatchPlans().Add(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Match %d planned: %s %s vs %s\n", mp.ID, mp.MatchDate, mp.KickoffTime, mp.Opponent)
			return nil
		})
	},
}

var matchLineupCmd = &cobra.Command{
	Use:   "lineup ID",
	Short: "Set the starters and substitutes of a match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args, 0)
		if err != nil {
			return err
		}
		var patch club.MatchPlanPatch
		if raw := changedString(cmd, "starters"); raw != nil {
			ids, err := idList(*raw)
			if err != nil {
				return fmt.Errorf("--starters: %w", err)
			}
			patch.Starters = &ids
		}
		if raw := changedString(cmd, "subs"); raw != nil {
			ids, err := idList(*raw)
			if err != nil {
				return fmt.Errorf("--subs: %w", err)
			}
			patch.Substitutes = &ids
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			mp, err := sc.MatchPlans().Update(id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Match %d line-up: starters %s, subs %s\n", mp.ID, joinIDs(mp.Starters), joinIDs(mp.Substitutes))
			return nil
		})
	},
}

var matchDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a match plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args, 0)
		if err != nil {
			return err
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			if err := sc.MatchPlans().Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Match %d deleted\n", id)
			return nil
		})
	},
}

func joinIDs(ids []int) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = itoa(id)
	}
	return strings.Join(parts, ",")
}

func init() {
	matchListCmd.Flags().String("squad", "", "Only matches of this squad (senior|youth)")
	matchAddCmd.Flags().String("squad", "", "Squad (senior|youth)")
	matchAddCmd.Flags().String("venue", "", "Venue")
	matchAddCmd.Flags().String("competition", "", "Competition")
	matchAddCmd.Flags().String("notes", "", "Notes")
	for _, c := range []*cobra.Command{matchAddCmd, matchLineupCmd} {
		c.Flags().String("starters", "", "Starting player ids, comma separated")
		c.Flags().String("subs", "", "Substitute player ids, comma separated")
	}

	matchCmd.AddCommand(matchListCmd, matchAddCmd, matchLineupCmd, matchDeleteCmd)
	rootCmd.AddCommand(matchCmd)
}
