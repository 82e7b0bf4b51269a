// Package display renders classification and analysis results for the
// CLI, as JSON for machine consumption or pterm output for humans.
package display

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// MarshalJSON marshals with pretty formatting. All CLI JSON output goes
// through here so the shape stays consistent across commands.
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// ShouldOutputJSON reports whether a command should emit JSON, from the
// command's own --json flag or the root persistent one.
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	if cmd.Flags().Changed("json") {
		jsonFlag, _ := cmd.Flags().GetBool("json")
		return jsonFlag
	}
	globalFlag, _ := cmd.Root().PersistentFlags().GetBool("json")
	return globalFlag
}

// OutputJSON marshals and prints JSON using MarshalJSON.
func OutputJSON(v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
