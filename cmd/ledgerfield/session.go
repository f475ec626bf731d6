package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Veraticus/ledgerfield/internal/cli"
	"github.com/Veraticus/ledgerfield/internal/model"
)

func sessionCmd() *cobra.Command {
	var initial string

	cmd := &cobra.Command{
		Use:   "session <kind>",
		Short: "Edit one field interactively",
		Long: `Start a line based editing loop for one field. Type a value to check
it, + or - to step it, and q to quit.

` + fieldKindHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := requireKind(args[0])
			if err != nil {
				return err
			}

			tools, err := loadFieldTools(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			handler := cli.NewInterruptHandler(out, "Session")
			ctx, stop := handler.HandleInterrupts(cmd.Context())
			defer stop()

			var autofill func(string) string
			if kind == model.FieldTags {
				autofill = tools.autofill
			}

			session := cli.NewSession(cli.SessionConfig{
				Validator: tools.verifier,
				Stepper:   tools.stepper,
				Store:     tools.catalog,
				Autofill:  autofill,
				Reader:    cmd.InOrStdin(),
				Writer:    out,
				Kind:      kind,
				Initial:   initial,
			})

			err = session.Run(ctx)
			if errors.Is(err, cli.ErrInputCancelled) && (handler.WasInterrupted() || cmd.Context().Err() != nil) {
				return nil
			}
			if err != nil {
				return err
			}

			fprintln(out, cli.FormatBuffer(session.Buffer()))
			return nil
		},
	}

	cmd.Flags().StringVar(&initial, "value", "", "initial field value")

	return cmd
}
