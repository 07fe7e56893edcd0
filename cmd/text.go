package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	textID string
	textAt string
)

func init() {
	textCmd.Flags().StringVar(&textID, "id", "main", "Client data id")
	textCmd.Flags().StringVar(&textAt, "at", "", "Locator: XPath for XML payloads, field name or $-prefixed JSONPath for JSON")
	rootCmd.AddCommand(textCmd)
}

var textCmd = &cobra.Command{
	Use:   "text [reply.json]",
	Short: "Render the text of one client data payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := loadManager(args[0])
		if err != nil {
			return err
		}
		opts := cfg.RenderOptions()

		// An unset --at means the whole payload; --at "" is a real locator
		// (the text run of array-shaped JSON contents).
		var text string
		if cmd.Flags().Changed("at") {
			text, err = mgr.TextAt(textID, textAt, opts)
		} else {
			text, err = mgr.Text(textID, opts)
		}
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}
