package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/afstext/clientdata"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [reply.json]",
	Short: "List the client data payloads of a reply",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := loadManager(args[0])
		if err != nil {
			return err
		}
		for _, id := range mgr.IDs() {
			ex, err := mgr.Get(id)
			if err != nil {
				return err
			}
			line := fmt.Sprintf("%s\t%s", ex.ID(), ex.MimeType())
			if x, ok := ex.(*clientdata.XMLExtractor); ok && x.HasHighlight() {
				line += "\thighlighted"
			}
			fmt.Println(line)
		}
		return nil
	},
}
