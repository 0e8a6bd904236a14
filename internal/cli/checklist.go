package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"auditpro/internal/checklist"

	"github.com/spf13/cobra"
)

const (
	formatFlagName = "format"
	formatJSON     = "json"
	formatText     = "text"
)

func newChecklistCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "checklist",
		Short: "Work with audit checklist text",
	}

	parse := &cobra.Command{
		Use:     "parse [file]",
		Short:   "Parse checklist text and print the stored form",
		Long:    "parse reads checklist text from the file, or from standard input when the file is omitted or '-', validates it and prints the normalized checklist.",
		Example: "auditctl checklist parse restaurant.txt\ncat restaurant.txt | auditctl checklist parse --format text",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString(formatFlagName)
			if format != formatJSON && format != formatText {
				return fmt.Errorf("unsupported format %q (want %s or %s)", format, formatJSON, formatText)
			}

			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			def, err := checklist.Parse(text)
			if err != nil {
				return err
			}
			if err := checklist.Validate(def); err != nil {
				return err
			}

			if format == formatText {
				_, err = io.WriteString(cmd.OutOrStdout(), checklist.Format(def))
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(def)
		},
	}
	parse.Flags().String(formatFlagName, formatJSON, "Output format: json or text")

	command.AddCommand(parse)
	return command
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}
