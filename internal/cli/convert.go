package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	locsheet "github.com/KimNorgaard/go-locsheet"
	"github.com/KimNorgaard/go-locsheet/internal/config"
)

const (
	stdio          = "-"
	outputBaseName = "translations"
	literalExt     = ".ts"
)

var literalExts = map[string]bool{".ts": true, ".js": true, ".mjs": true}

func newConvertCommand() *cobra.Command {
	var (
		output    string
		direction string
	)

	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert a translation module to a spreadsheet or back",
		Long: `Convert a translation module (.ts, .js, .mjs) into a spreadsheet, or a
spreadsheet (.xlsx, .csv) into a translation module.

The direction is inferred from the input extension unless --direction is given.
Use "-" as input to read from stdin; the result then goes to stdout unless -o
is set. Without -o the result is written next to the input as translations.xlsx,
translations.csv or translations.ts.`,
		Example: `  locsheet convert src/i18n/en.ts
  locsheet convert translations.xlsx -o src/i18n/en.ts
  cat en.ts | locsheet convert - --direction literal-to-table --format csv > en.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfig(cmd.Context())
			if err != nil {
				return err
			}
			logger := getLogger(cmd.Context())
			input := args[0]

			dir, err := resolveDirection(direction, input)
			if err != nil {
				return err
			}
			format, err := tableFormat(cfg, dir, input, output)
			if err != nil {
				return err
			}
			if output == "" {
				output = defaultOutput(input, dir, format)
			}

			data, err := readInput(cmd, input)
			if err != nil {
				return err
			}

			conv, err := locsheet.NewConverter(append(cfg.ConverterOptions(logger), locsheet.WithTableFormat(format))...)
			if err != nil {
				return err
			}
			out, err := conv.Convert(dir, data)
			if err != nil {
				return err
			}

			if err := writeOutput(cmd, output, out); err != nil {
				return err
			}
			logger.Info("converted", "input", input, "output", output, "direction", dir, "format", format, "bytes", len(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `Output file ("-" for stdout)`)
	cmd.Flags().StringVarP(&direction, "direction", "d", "", "Conversion direction (literal-to-table|table-to-literal)")
	_ = cmd.RegisterFlagCompletionFunc("direction", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{string(locsheet.LiteralToTable), string(locsheet.TableToLiteral)}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// resolveDirection returns the explicit direction or infers it from the
// input file extension.
func resolveDirection(explicit, input string) (locsheet.Direction, error) {
	if explicit != "" {
		return locsheet.ParseDirection(explicit)
	}
	if input == stdio {
		return "", fmt.Errorf("--direction is required when reading from stdin")
	}
	if literalExts[strings.ToLower(filepath.Ext(input))] {
		return locsheet.LiteralToTable, nil
	}
	if _, ok := locsheet.DetectTableFormat(input); ok {
		return locsheet.TableToLiteral, nil
	}
	return "", fmt.Errorf("cannot infer direction from %q; use --direction", input)
}

// tableFormat picks the spreadsheet format from the name of the table-side
// file, falling back to the configured format.
func tableFormat(cfg *config.Config, dir locsheet.Direction, input, output string) (locsheet.TableFormat, error) {
	name := output
	if dir == locsheet.TableToLiteral {
		name = input
	}
	if f, ok := locsheet.DetectTableFormat(name); ok {
		return f, nil
	}
	return locsheet.ParseTableFormat(cfg.Format)
}

func defaultOutput(input string, dir locsheet.Direction, format locsheet.TableFormat) string {
	if input == stdio {
		return stdio
	}
	ext := literalExt
	if dir == locsheet.LiteralToTable {
		ext = "." + string(format)
	}
	return filepath.Join(filepath.Dir(input), outputBaseName+ext)
}

func readInput(cmd *cobra.Command, input string) ([]byte, error) {
	if input == stdio {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

func writeOutput(cmd *cobra.Command, output string, data []byte) error {
	if output == stdio {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
