package model

import "errors"

// Transaction type names.
const (
	TxTypeIncome   = "Income"
	TxTypeExpense  = "Expense"
	TxTypeTransfer = "Transfer"
)

// TxTypes lists the transaction types in stepping order.
var TxTypes = [...]string{TxTypeIncome, TxTypeExpense, TxTypeTransfer}

// Record check errors.
var (
	ErrEmptyDate    = errors.New("date cannot be empty")
	ErrEmptyMethod  = errors.New("tx method cannot be empty")
	ErrEmptyAmount  = errors.New("amount cannot be empty")
	ErrEmptyTxType  = errors.New("transaction type cannot be empty")
	ErrSameTxMethod = errors.New("from and to methods cannot be the same for a transfer")
)

var recordMessages = map[error]string{
	ErrEmptyDate:    "Date: Date cannot be empty",
	ErrEmptyMethod:  "Tx Method: TX Method cannot be empty",
	ErrEmptyAmount:  "Amount: Amount cannot be empty",
	ErrEmptyTxType:  "Tx Type: Transaction Type cannot be empty",
	ErrSameTxMethod: "Tx Method: From and To methods cannot be the same for Transfer",
}

// RecordMessages returns the user-facing text for every record check error
// in err, which may be joined. Unknown errors keep their own text.
func RecordMessages(err error) []string {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var msgs []string
		for _, e := range joined.Unwrap() {
			msgs = append(msgs, RecordMessages(e)...)
		}
		return msgs
	}
	if msg, ok := recordMessages[err]; ok {
		return []string{msg}
	}
	return []string{err.Error()}
}

// Record holds the raw text of a transaction being edited. ToMethod is only
// used by transfers.
type Record struct {
	Date       string
	Details    string
	FromMethod string
	ToMethod   string
	Amount     string
	TxType     string
	Tags       string
}

// IsTransfer reports whether the record moves money between two methods.
func (r Record) IsTransfer() bool {
	return r.TxType == TxTypeTransfer
}
