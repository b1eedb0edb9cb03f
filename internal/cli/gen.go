package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/macropower/pycraft/pkg/gencmd"
	"github.com/macropower/pycraft/pkg/pygen"
)

const (
	genDesc = `This command generates Python modules from definition documents
`
	genExample = `  pycraft gen [definition files]...
  # Generate models.py from models.yaml in the current directory
  pycraft gen models.yaml

  # Generate into a package directory, formatted and syntax-checked
  pycraft gen models.yaml api.yaml -o ./out --format --validate
`
)

var ErrInvalidArgument = errors.New("invalid argument")

// NewGenCmd returns the gen command.
func NewGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "gen",
		Short:        "Generate Python modules from definition documents",
		Long:         genDesc,
		Example:      genExample,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cc *cobra.Command, args []string) error {
			var merr error

			flags := cc.Flags()
			outputDir, err := flags.GetString("output")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			format, err := flags.GetBool("format")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			validate, err := flags.GetBool("validate")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			lineLength, err := flags.GetInt("line_length")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			indentSize, err := flags.GetInt("indent_size")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			parallelism, err := flags.GetInt64("parallelism")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
			}

			g := &gencmd.Generator{
				OutputDir:  outputDir,
				Format:     format,
				Validate:   validate,
				LineLength: lineLength,
				IndentSize: indentSize,
				Workers:    parallelism,
			}

			if isatty.IsTerminal(os.Stdout.Fd()) {
				g.OnResult = func(res gencmd.Result) {
					if res.Err == nil {
						cc.Printf("wrote %s\n", res.Output)
					}
				}
			}

			if err := g.Run(cc.Context(), args); err != nil {
				return fmt.Errorf("gen failed: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", ".", "Output directory for generated files")
	if err := cmd.MarkFlagDirname("output"); err != nil {
		panic(err)
	}

	cmd.Flags().Bool("format", false, "Format generated files with black")
	cmd.Flags().Bool("validate", false, "Syntax-check generated files with the Python interpreter")
	cmd.Flags().Int("line_length", pygen.DefaultLineLength, "Line length passed to the formatter")
	cmd.Flags().Int("indent_size", pygen.DefaultIndentSize, "Number of spaces per indentation level")
	cmd.Flags().Int64("parallelism", 0, "Maximum concurrent generations (0 for GOMAXPROCS)")

	return cmd
}
