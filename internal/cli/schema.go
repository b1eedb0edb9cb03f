package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/pycraft/pkg/pymodule"
)

// NewSchemaCmd returns the schema command, which prints the JSON Schema of
// the definition document format.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for definition documents",
		RunE: func(cc *cobra.Command, _ []string) error {
			out, err := pymodule.Schema()
			if err != nil {
				return fmt.Errorf("schema failed: %w", err)
			}

			cc.Println(string(out))

			return nil
		},
	}
}
