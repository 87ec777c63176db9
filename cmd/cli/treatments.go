package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vilacaiz/clubhouse/internal/club"
)

var treatmentCmd = &cobra.Command{
	Use:   "treatment",
	Short: "Manage clinical treatments",
}

var treatmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List treatments with current availability",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var f club.TreatmentFilter
		f.PlayerID, _ = cmd.Flags().GetInt("player")
		if cmd.Flags().Changed("available") {
			available, _ := cmd.Flags().GetBool("available")
			f.Available = &available
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			treatments, err := sc.Treatments().List(f)
			if err != nil {
				return err
			}
			t := newTable(cmd.OutOrStdout(), "ID", "PLAYER", "PHYSIO", "DIAGNOSIS", "START", "RETURN", "AVAILABLE")
			for _, tr := range treatments {
				t.row(itoa(tr.ID), itoa(tr.PlayerID), optInt(tr.PhysioID), tr.Diagnosis, tr.StartDate.String(), tr.ExpectedReturn.String(), fmt.Sprint(tr.Available))
			}
			return t.flush()
		})
	},
}

var treatmentAddCmd = &cobra.Command{
	Use:   "add PLAYER_ID DIAGNOSIS PLAN",
	Short: "Open a treatment for a player",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		playerID, err := idArg(args, 0)
		if err != nil {
			return err
		}
		in := club.TreatmentInput{PlayerID: playerID, Diagnosis: args[1], Plan: args[2], PhysioID: changedInt(cmd, "physio")}
		in.Notes, _ = cmd.Flags().GetString("notes")
		if in.StartDate, err = dateFlag(cmd, "start"); err != nil {
			return err
		}
		if in.ExpectedReturn, err = dateFlag(cmd, "return"); err != nil {
			return err
		}
		return withScope(func(c *club.Club, sc club.Scope) error {
			if in.StartDate.IsZero() {
				in.StartDate = c.Today()
			}
			tr, err := sc.Treatments().Add(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Treatment %d added (available: %t)\n", tr.ID, tr.Available)
			return nil
		})
	},
}

var treatmentUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Change a treatment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args, 0)
		if err != nil {
			return err
		}
		patch := club.TreatmentPatch{
			PhysioID:  changedInt(cmd, "physio"),
			Diagnosis: changedString(cmd, "diagnosis"),
			Plan:      changedString(cmd, "plan"),
			Notes:     changedString(cmd, "notes"),
		}
		if patch.ExpectedReturn, err = changedDate(cmd, "return"); err != nil {
			return err
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			tr, err := sc.Treatments().Update(id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Treatment %d updated (available: %t)\n", tr.ID, tr.Available)
			return nil
		})
	},
}

var treatmentDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a treatment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args, 0)
		if err != nil {
			return err
		}
		return withScope(func(_ *club.Club, sc club.Scope) error {
			if err := sc.Treatments().Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Treatment %d deleted\n", id)
			return nil
		})
	},
}

func init() {
	treatmentListCmd.Flags().Int("player", 0, "Only treatments of this player")
	treatmentListCmd.Flags().Bool("available", false, "Only treatments whose player is (or is not) available")
	treatmentAddCmd.Flags().Int("physio", 0, "Physiotherapist in charge")
	treatmentAddCmd.Flags().String("start", "", "Start date (YYYY-MM-DD, defaults to today)")
	treatmentAddCmd.Flags().String("return", "", "Expected return date (YYYY-MM-DD)")
	treatmentAddCmd.Flags().String("notes", "", "Notes")
	treatmentUpdateCmd.Flags().Int("physio", 0, "Physiotherapist in charge")
	treatmentUpdateCmd.Flags().String("diagnosis", "", "Diagnosis")
	treatmentUpdateCmd.Flags().String("plan", "", "Treatment plan")
	treatmentUpdateCmd.Flags().String("return", "", "Expected return date (YYYY-MM-DD)")
	treatmentUpdateCmd.Flags().String("notes", "", "Notes")

	treatmentCmd.AddCommand(treatmentListCmd, treatmentAddCmd, treatmentUpdateCmd, treatmentDeleteCmd)
	rootCmd.AddCommand(treatmentCmd)
}
