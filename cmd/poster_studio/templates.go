package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/poster-studio/internal/poster"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available poster templates",
	Run: func(_ *cobra.Command, _ []string) {
		for _, tmpl := range poster.Templates() {
			marker := " "
			if tmpl.ID == poster.DefaultTemplateID {
				marker = "*"
			}
			fmt.Printf("%s %-12s %s\n", marker, tmpl.ID, tmpl.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
