package field

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/ledgerfield/internal/model"
)

const dateLayout = "2006-01-02"

// Bounds of an acceptable date.
const (
	MinDate = "2022-01-01"
	MaxDate = "2037-12-31"

	minYear = 2022
	maxYear = 2037
)

// VerifyDate checks a YYYY-MM-DD buffer. Structure problems are reported one
// at a time, each with a partial correction applied so that repeated calls
// converge on a valid date.
func (v *Verifier) VerifyDate(buf *string) model.Outcome {
	if *buf == "" {
		return model.Empty(model.FieldDate)
	}

	*buf = keepRunes(*buf, func(r rune) bool { return isDigit(r) || r == '-' })

	parts := strings.Split(*buf, "-")
	if len(parts) != 3 {
		*buf = MinDate
		return model.Rejected(model.FieldDate, model.ReasonInvalidDate)
	}
	yearPart, monthPart, dayPart := parts[0], parts[1], parts[2]

	year, err := strconv.ParseUint(yearPart, 10, 32)
	if err != nil {
		return model.Rejected(model.FieldDate, model.ReasonParsingError)
	}
	month, err := strconv.ParseUint(monthPart, 10, 32)
	if err != nil {
		return model.Rejected(model.FieldDate, model.ReasonParsingError)
	}
	day, err := strconv.ParseUint(dayPart, 10, 32)
	if err != nil {
		return model.Rejected(model.FieldDate, model.ReasonParsingError)
	}

	switch {
	case len(yearPart) < 4:
		*buf = joinDate(strconv.Itoa(minYear), monthPart, dayPart)
		return model.Rejected(model.FieldDate, model.ReasonInvalidYear)
	case len(yearPart) > 4:
		*buf = joinDate(yearPart[:4], monthPart, dayPart)
		return model.Rejected(model.FieldDate, model.ReasonInvalidYear)
	case len(monthPart) != 2:
		*buf = joinDate(yearPart, padSegment(month, 12), dayPart)
		return model.Rejected(model.FieldDate, model.ReasonInvalidMonth)
	case len(dayPart) != 2:
		*buf = joinDate(yearPart, monthPart, padSegment(day, 31))
		return model.Rejected(model.FieldDate, model.ReasonInvalidDay)
	case year < minYear:
		*buf = joinDate(strconv.Itoa(minYear), monthPart, dayPart)
		return model.Rejected(model.FieldDate, model.ReasonYearOutOfRange)
	case year > maxYear:
		*buf = joinDate(strconv.Itoa(maxYear), monthPart, dayPart)
		return model.Rejected(model.FieldDate, model.ReasonYearOutOfRange)
	case month < 1:
		*buf = joinDate(yearPart, "01", dayPart)
		return model.Rejected(model.FieldDate, model.ReasonMonthOutOfRange)
	case month > 12:
		*buf = joinDate(yearPart, "12", dayPart)
		return model.Rejected(model.FieldDate, model.ReasonMonthOutOfRange)
	case day < 1:
		*buf = joinDate(yearPart, monthPart, "01")
		return model.Rejected(model.FieldDate, model.ReasonDayOutOfRange)
	case day > 31:
		*buf = joinDate(yearPart, monthPart, "31")
		return model.Rejected(model.FieldDate, model.ReasonDayOutOfRange)
	}

	if _, err := time.Parse(dateLayout, *buf); err != nil {
		return model.Rejected(model.FieldDate, model.ReasonNonExistingDate)
	}

	return model.Accepted(model.FieldDate)
}

// StepDate moves an accepted date by one day without leaving
// [MinDate, MaxDate]. An empty buffer starts at MinDate.
func (s *FieldStepper) StepDate(buf *string, dir model.Direction) error {
	outcome := s.validator.VerifyDate(buf)

	switch outcome.Status {
	case model.StatusRejected:
		return model.ErrStepInvalidDate
	case model.StatusEmpty:
		*buf = MinDate
		return nil
	}

	current, err := time.Parse(dateLayout, *buf)
	if err != nil {
		return model.ErrStepInvalidDate
	}

	switch dir {
	case model.Increase:
		if *buf != MaxDate {
			current = current.AddDate(0, 0, 1)
		}
	case model.Decrease:
		if *buf != MinDate {
			current = current.AddDate(0, 0, -1)
		}
	}

	*buf = current.Format(dateLayout)
	return nil
}

func joinDate(year, month, day string) string {
	return year + "-" + month + "-" + day
}

// padSegment renders a month or day segment as two digits, capping values
// above limit.
func padSegment(value uint64, limit uint64) string {
	if value > limit {
		value = limit
	}
	return fmt.Sprintf("%02d", value)
}
