package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Veraticus/ledgerfield/internal/cli"
	"github.com/Veraticus/ledgerfield/internal/common"
	"github.com/Veraticus/ledgerfield/internal/field"
	"github.com/Veraticus/ledgerfield/internal/model"
)

const fieldKindHelp = `Field kinds: date, amount, tx_method (method), tx_type (type), tags (tag).`

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <kind> [text]",
		Short: "Check a field value and print its corrected form",
		Long: `Run the validator for one field, print the outcome and the value
after correction. Amounts may contain arithmetic such as 2+3*4.

` + fieldKindHelp,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := requireKind(args[0])
			if err != nil {
				return err
			}
			buf := argOrEmpty(args, 1)

			tools, err := loadFieldTools(cmd.Context())
			if err != nil {
				return err
			}

			outcome, err := field.Validate(tools.verifier, kind, &buf, tools.catalog)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fprintln(out, cli.FormatOutcome(outcome))
			fprintln(out, cli.FormatBuffer(buf))
			return nil
		},
	}
}

func stepCmd() *cobra.Command {
	var (
		down     bool
		autofill string
	)

	cmd := &cobra.Command{
		Use:   "step <kind> [text]",
		Short: "Move a field value to the next or previous valid value",
		Long: `Validate a field and step it up (default) or down. Dates move by a
day, amounts by one, methods and types cycle through their lists, and the
last tag cycles through the known tags.

` + fieldKindHelp,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := requireKind(args[0])
			if err != nil {
				return err
			}
			buf := argOrEmpty(args, 1)

			dir := model.Increase
			if down {
				dir = model.Decrease
			}

			tools, err := loadFieldTools(cmd.Context())
			if err != nil {
				return err
			}

			if kind == model.FieldTags && !cmd.Flags().Changed("autofill") {
				autofill = tools.autofill(buf)
			}

			stepErr := field.Step(tools.stepper, kind, &buf, dir, tools.catalog, autofill)

			var failure model.SteppingFailure
			if stepErr != nil && !errors.As(stepErr, &failure) {
				return stepErr
			}

			out := cmd.OutOrStdout()
			fprintln(out, cli.FormatBuffer(buf))
			if stepErr != nil {
				fprintln(out, cli.FormatError(failure.Message()))
				return common.NewUserError("Step failed", stepErr)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "step to the previous value instead of the next")
	cmd.Flags().StringVar(&autofill, "autofill", "", "tag to use when the last tag is unknown (default: closest known tag)")

	return cmd
}

func argOrEmpty(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// requireKind parses a kind argument before any storage is opened.
func requireKind(name string) (model.FieldKind, error) {
	kind, err := model.ParseFieldKind(name)
	if err != nil {
		return "", common.NewUserError("Invalid argument", err)
	}
	return kind, nil
}
