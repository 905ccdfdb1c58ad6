package main

import (
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available functions and their domains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title := cases.Title(language.English)
			listed := make([]function, len(functions))
			for i, f := range functions {
				f.Title = title.String(f.Title)
				listed[i] = f
			}

			w := cmd.OutOrStdout()
			if a.format == formatJSON {
				return jsonOut.NewEncoder(w).Encode(listed)
			}

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			p := message.NewPrinter(language.English)
			for _, f := range listed {
				shape := ""
				if f.Shape {
					shape = "--a"
				}
				p.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, f.Title, f.Domain, shape)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			p.Fprintf(w, "%d functions\n", len(listed))
			return nil
		},
	}
}
