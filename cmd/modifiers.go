package cmd

import (
	"fmt"
	"strings"

	"sl10n/core/modifier"

	"github.com/spf13/cobra"
)

// modifiersCmd represents the modifiers command
var modifiersCmd = &cobra.Command{
	Use:   "modifiers",
	Short: "Print the directives translation files may carry",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		pre, post := modifier.Available()
		fmt.Printf("PreModifiers available: %s\n", strings.Join(pre, ", "))
		fmt.Printf("PostModifiers available: %s\n", strings.Join(post, ", "))
	},
}

func init() {
	RootCmd.AddCommand(modifiersCmd)
}
