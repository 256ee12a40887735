package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"remotework/internal/domain/schedule"
	"remotework/internal/domain/team"
	"remotework/internal/infrastructure/teamfile"
)

func newOnlineCmd(opts *rootOptions) *cobra.Command {
	var teamFile, atFlag string

	cmd := &cobra.Command{
		Use:   "online",
		Short: "Print members online at a UTC time of day (default now)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			at := schedule.FromTime(time.Now())
			if atFlag != "" {
				var err error
				if at, err = schedule.ParseTimeOfDay(atFlag); err != nil {
					return err
				}
			}

			t, err := teamfile.NewLoader(teamFile, opts.log).Load(cmd.Context())
			if err != nil {
				return err
			}

			for _, name := range team.Names(t.MembersOnlineAt(at)) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&teamFile, "team", "team.json", "team definition file")
	cmd.Flags().StringVar(&atFlag, "at", "", "UTC time of day, HH:MM:SS")
	return cmd
}

func newConvertCmd() *cobra.Command {
	var offsetFlag string

	cmd := &cobra.Command{
		Use:   "convert HH:MM:SS",
		Short: "Convert a UTC time of day to a fixed offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := schedule.ParseTimeOfDay(args[0])
			if err != nil {
				return err
			}
			off, err := schedule.ParseOffset(offsetFlag)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), schedule.ConvertToOffset(t, off))
			return nil
		},
	}

	cmd.Flags().StringVar(&offsetFlag, "offset", "+00:00", "target UTC offset, e.g. +05:30")
	return cmd
}

func newScheduleCmd(opts *rootOptions) *cobra.Command {
	var teamFile, offsetFlag string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print each member's work blocks in a display offset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			off, err := schedule.ParseOffset(offsetFlag)
			if err != nil {
				return err
			}
			t, err := teamfile.NewLoader(teamFile, opts.log).Load(cmd.Context())
			if err != nil {
				return err
			}

			for _, m := range t.Members() {
				var blocks []string
				for _, iv := range m.WorkIntervals() {
					for _, b := range schedule.DisplayBlocks(iv, off) {
						blocks = append(blocks, b.String())
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m.Name(), strings.Join(blocks, " "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&teamFile, "team", "team.json", "team definition file")
	cmd.Flags().StringVar(&offsetFlag, "offset", "+00:00", "display UTC offset, e.g. -08:00")
	return cmd
}
