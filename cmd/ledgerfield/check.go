package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/ledgerfield/internal/cli"
	"github.com/Veraticus/ledgerfield/internal/common"
	"github.com/Veraticus/ledgerfield/internal/field"
	"github.com/Veraticus/ledgerfield/internal/model"
)

var errRecordRejected = errors.New("record has rejected fields")

func checkCmd() *cobra.Command {
	var rec model.Record

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check every field of a transaction",
		Long: `Normalize all fields of a transaction in form order, print each
outcome and the corrected record, then run the submit checks: date, method,
amount and type are required and a transfer needs two different methods.`,
		Example: `  ledgerfield check --date 2024-3-9 --from bank --amount 12+3 --type expense --tags "food, Food"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tools, err := loadFieldTools(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			outcomes := field.NormalizeRecord(tools.verifier, &rec, tools.catalog)

			rejected := 0
			for _, outcome := range outcomes {
				fprintln(out, cli.FormatOutcome(outcome))
				if outcome.IsRejected() {
					rejected++
				}
			}
			fprintln(out, cli.RenderBox("Record", formatRecord(rec)))

			checkErr := field.CheckRecord(rec)
			if checkErr != nil {
				for _, msg := range model.RecordMessages(checkErr) {
					fprintln(out, cli.FormatError(msg))
				}
			}

			switch {
			case rejected > 0:
				return common.NewUserError(fmt.Sprintf("%d field(s) rejected", rejected), errors.Join(errRecordRejected, checkErr))
			case checkErr != nil:
				return common.NewUserError("Record incomplete", checkErr)
			}

			fprintln(out, cli.FormatSuccess("Record is ready"))
			return nil
		},
	}

	cmd.Flags().StringVar(&rec.Date, "date", "", "transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&rec.Details, "details", "", "free-form details")
	cmd.Flags().StringVar(&rec.FromMethod, "from", "", "transaction method money comes from")
	cmd.Flags().StringVar(&rec.ToMethod, "to", "", "transaction method money goes to (transfers only)")
	cmd.Flags().StringVar(&rec.Amount, "amount", "", "amount, arithmetic allowed")
	cmd.Flags().StringVar(&rec.TxType, "type", "", "transaction type (income, expense, transfer)")
	cmd.Flags().StringVar(&rec.Tags, "tags", "", "comma separated tags")

	return cmd
}

func formatRecord(rec model.Record) string {
	rows := [][2]string{
		{"Date", rec.Date},
		{"Details", rec.Details},
		{"From", rec.FromMethod},
	}
	if rec.IsTransfer() {
		rows = append(rows, [2]string{"To", rec.ToMethod})
	}
	rows = append(rows,
		[2]string{"Amount", rec.Amount},
		[2]string{"Type", rec.TxType},
		[2]string{"Tags", rec.Tags},
	)

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-8s %s", cli.SubtleStyle.Render(row[0]), row[1])
	}
	return b.String()
}
