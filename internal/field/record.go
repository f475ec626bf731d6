package field

import (
	"errors"

	"github.com/Veraticus/ledgerfield/internal/model"
)

// NormalizeRecord validates every field of rec in form order, rewriting the
// fields in place. ToMethod is only checked for transfers.
func NormalizeRecord(v Validator, rec *model.Record, store Store) []model.Outcome {
	outcomes := []model.Outcome{
		v.VerifyDate(&rec.Date),
		v.VerifyTxMethod(&rec.FromMethod, store),
	}
	// The type decides whether ToMethod matters, so it is checked early but
	// reported in form order.
	typeOutcome := v.VerifyTxType(&rec.TxType)
	if rec.IsTransfer() {
		outcomes = append(outcomes, v.VerifyTxMethod(&rec.ToMethod, store))
	}
	outcomes = append(outcomes,
		v.VerifyAmount(&rec.Amount),
		typeOutcome,
		v.VerifyTags(&rec.Tags, store),
	)
	return outcomes
}

// CheckRecord reports every required field that is still empty and
// transfers whose two methods are the same.
func CheckRecord(rec model.Record) error {
	var errs []error
	if rec.Date == "" {
		errs = append(errs, model.ErrEmptyDate)
	}
	if rec.FromMethod == "" || (rec.IsTransfer() && rec.ToMethod == "") {
		errs = append(errs, model.ErrEmptyMethod)
	}
	if rec.Amount == "" {
		errs = append(errs, model.ErrEmptyAmount)
	}
	if rec.TxType == "" {
		errs = append(errs, model.ErrEmptyTxType)
	}
	if rec.IsTransfer() && rec.FromMethod != "" && rec.FromMethod == rec.ToMethod {
		errs = append(errs, model.ErrSameTxMethod)
	}
	return errors.Join(errs...)
}
