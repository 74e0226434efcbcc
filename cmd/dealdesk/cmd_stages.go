package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dealdesk/internal/models"
	"dealdesk/internal/services"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List pipeline stages and their suggested moves",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tNEXT")
		for _, st := range models.PipelineStages() {
			var next []string
			for _, s := range services.SuggestedStages(st.ID) {
				next = append(next, string(s.To))
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", st.ID, st.Name, strings.Join(next, ", "))
		}
		return w.Flush()
	},
}
