package model

import "fmt"

// OutcomeStatus is the shape of a verification outcome.
type OutcomeStatus string

// Outcome statuses.
const (
	StatusAccepted OutcomeStatus = "ACCEPTED"
	StatusRejected OutcomeStatus = "REJECTED"
	StatusEmpty    OutcomeStatus = "EMPTY"
)

// RejectReason names the rule a buffer failed.
type RejectReason string

// Reject reasons.
const (
	ReasonParsingError    RejectReason = "PARSING_ERROR"
	ReasonInvalidDate     RejectReason = "INVALID_DATE"
	ReasonInvalidYear     RejectReason = "INVALID_YEAR"
	ReasonInvalidMonth    RejectReason = "INVALID_MONTH"
	ReasonInvalidDay      RejectReason = "INVALID_DAY"
	ReasonYearOutOfRange  RejectReason = "YEAR_OUT_OF_RANGE"
	ReasonMonthOutOfRange RejectReason = "MONTH_OUT_OF_RANGE"
	ReasonDayOutOfRange   RejectReason = "DAY_OUT_OF_RANGE"
	ReasonNonExistingDate RejectReason = "NON_EXISTING_DATE"
	ReasonAmountBelowZero RejectReason = "AMOUNT_BELOW_ZERO"
	ReasonInvalidTxMethod RejectReason = "INVALID_TX_METHOD"
	ReasonInvalidTxType   RejectReason = "INVALID_TX_TYPE"
	ReasonNonExistingTag  RejectReason = "NON_EXISTING_TAG"
)

var reasonMessages = map[RejectReason]string{
	ReasonInvalidDate:     "Unknown date format. Use YYYY-MM-DD",
	ReasonInvalidYear:     "Year length is not acceptable. Example: 2022",
	ReasonInvalidMonth:    "Month length is not acceptable. Example: 01",
	ReasonInvalidDay:      "Day length is not acceptable. Example: 01",
	ReasonYearOutOfRange:  "Year must be between 2022-2037",
	ReasonMonthOutOfRange: "Month must be between 01-12",
	ReasonDayOutOfRange:   "Day must be between 01-31",
	ReasonNonExistingDate: "The date does not exist",
	ReasonAmountBelowZero: "Amount must be above zero",
	ReasonInvalidTxMethod: "Transaction method does not exist, corrected to the closest match",
	ReasonInvalidTxType:   "Transaction type must be Income, Expense or Transfer",
	ReasonNonExistingTag:  "One or more tags do not exist and were removed",
}

// Outcome is the result of verifying one field buffer.
type Outcome struct {
	Kind   FieldKind
	Status OutcomeStatus
	Reason RejectReason
}

// Accepted reports a buffer that is canonical and usable.
func Accepted(kind FieldKind) Outcome {
	return Outcome{Kind: kind, Status: StatusAccepted}
}

// Rejected reports a buffer that failed reason. The buffer may have been
// partially corrected.
func Rejected(kind FieldKind, reason RejectReason) Outcome {
	return Outcome{Kind: kind, Status: StatusRejected, Reason: reason}
}

// Empty reports a buffer that held no text.
func Empty(kind FieldKind) Outcome {
	return Outcome{Kind: kind, Status: StatusEmpty}
}

// IsAccepted reports whether the outcome is Accepted.
func (o Outcome) IsAccepted() bool { return o.Status == StatusAccepted }

// IsRejected reports whether the outcome is Rejected.
func (o Outcome) IsRejected() bool { return o.Status == StatusRejected }

// IsEmpty reports whether the outcome is Empty.
func (o Outcome) IsEmpty() bool { return o.Status == StatusEmpty }

// Message returns the user-facing text for the outcome.
func (o Outcome) Message() string {
	switch o.Status {
	case StatusAccepted:
		return fmt.Sprintf("%s: Accepted", o.Kind.Label())
	case StatusEmpty:
		return fmt.Sprintf("%s: Nothing to check", o.Kind.Label())
	}
	if o.Reason == ReasonParsingError {
		return fmt.Sprintf("%s: Error acquired while validating input", o.Kind.Label())
	}
	if msg, ok := reasonMessages[o.Reason]; ok {
		return fmt.Sprintf("%s: %s", o.Kind.Label(), msg)
	}
	return fmt.Sprintf("%s: Rejected (%s)", o.Kind.Label(), o.Reason)
}

func (o Outcome) String() string {
	if o.Status == StatusRejected {
		return fmt.Sprintf("%s(%s, %s)", o.Status, o.Kind, o.Reason)
	}
	return fmt.Sprintf("%s(%s)", o.Status, o.Kind)
}
