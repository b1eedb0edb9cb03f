package cli

import (
	"github.com/spf13/cobra"

	"github.com/macropower/pycraft/internal/version"
)

func GetVersionString() string {
	return version.Version
}

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the pycraft CLI",
		Run: func(cc *cobra.Command, _ []string) {
			cc.Println(GetVersionString())
		},
	}
}
