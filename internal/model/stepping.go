package model

// SteppingFailure is returned when a stepper cannot produce a successor from
// the current buffer. It is compared with errors.Is.
type SteppingFailure string

// Stepping failures.
const (
	ErrStepInvalidDate        SteppingFailure = "INVALID_DATE"
	ErrStepInvalidTxMethod    SteppingFailure = "INVALID_TX_METHOD"
	ErrStepInvalidAmount      SteppingFailure = "INVALID_AMOUNT"
	ErrStepInvalidTxType      SteppingFailure = "INVALID_TX_TYPE"
	ErrStepInvalidTags        SteppingFailure = "INVALID_TAGS"
	ErrStepUnknownAmountState SteppingFailure = "UNKNOWN_AMOUNT_STATE"
)

var steppingMessages = map[SteppingFailure]string{
	ErrStepInvalidDate:        "Date: Failed to step due to invalid date format",
	ErrStepInvalidTxMethod:    "Tx Method: Failed to step as the tx method does not exist",
	ErrStepInvalidAmount:      "Amount: Failed to step due to invalid amount format",
	ErrStepInvalidTxType:      "Tx Type: Failed to step due to invalid tx type",
	ErrStepInvalidTags:        "Tags: Failed to step as the tag does not exist",
	ErrStepUnknownAmountState: "Amount: Failed to step value. Current amount cannot be determined",
}

func (f SteppingFailure) Error() string {
	switch f {
	case ErrStepInvalidDate:
		return "failed to step date: invalid date format"
	case ErrStepInvalidTxMethod:
		return "failed to step tx method: method does not exist"
	case ErrStepInvalidAmount:
		return "failed to step amount: invalid amount format"
	case ErrStepInvalidTxType:
		return "failed to step tx type: invalid tx type"
	case ErrStepInvalidTags:
		return "failed to step tags: tag does not exist"
	case ErrStepUnknownAmountState:
		return "failed to step amount: current amount cannot be determined"
	default:
		return "failed to step: " + string(f)
	}
}

// Message returns the text shown to the user for the failure.
func (f SteppingFailure) Message() string {
	if msg, ok := steppingMessages[f]; ok {
		return msg
	}
	return "Failed to step: " + string(f)
}
