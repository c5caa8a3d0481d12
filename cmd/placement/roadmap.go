package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"placement-backend/internal/roadmaps"
)

func newRoadmapCmd() *cobra.Command {
	var (
		day    int
		list   bool
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "roadmap [label]",
		Short: "Show the roadmap for an action item or plan day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if list {
				for _, label := range roadmaps.Labels() {
					fmt.Fprintln(w, label)
				}
				return nil
			}

			label := strings.Join(args, " ")
			var rm roadmaps.Roadmap
			if cmd.Flags().Changed("day") {
				rm = roadmaps.ResolveDay(day, label)
			} else {
				rm = roadmaps.Resolve(label)
			}
			if asJSON {
				return writeJSON(w, rm)
			}
			printRoadmap(w, rm)
			return nil
		},
	}
	cmd.Flags().IntVar(&day, "day", 0, "resolve as preparation plan day N with label as its focus")
	cmd.Flags().BoolVar(&list, "list", false, "list known action labels")
	cmd.Flags().BoolVar(&asJSON, "output-json", false, "print the roadmap as JSON")
	return cmd
}

func printRoadmap(w io.Writer, rm roadmaps.Roadmap) {
	fmt.Fprintln(w, rm.Title)
	if rm.Subject != "" {
		fmt.Fprintf(w, "For: %s\n", rm.Subject)
	}
	fmt.Fprintf(w, "%s\n\n", rm.Description)
	for i, s := range rm.Steps {
		fmt.Fprintf(w, "%d. %s\n   %s\n", i+1, s.Title, s.Description)
	}
	if len(rm.Tips) > 0 {
		fmt.Fprintln(w, "\nTips:")
		for _, tip := range rm.Tips {
			fmt.Fprintf(w, "  - %s\n", tip)
		}
	}
	if len(rm.Resources) > 0 {
		fmt.Fprintln(w, "\nResources:")
		for _, r := range rm.Resources {
			fmt.Fprintf(w, "  - %s\n", r)
		}
	}
}
