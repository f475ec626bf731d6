package field

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// calcSymbols is the order in which operators are resolved. Each pass
// resolves the first occurrence of the first symbol present and then starts
// over from '*'.
const calcSymbols = "*/+-"

var errBadOperand = errors.New("operand is not a number")

func isCalcSymbol(b byte) bool {
	return strings.IndexByte(calcSymbols, b) >= 0
}

// hasCalcSymbol reports whether expr contains an operator. A leading '-' is
// a sign.
func hasCalcSymbol(expr string) bool {
	return countCalcSymbols(expr) > 0
}

func countCalcSymbols(expr string) int {
	n := 0
	for i := 0; i < len(expr); i++ {
		if isCalcSymbol(expr[i]) && !isSign(expr, i) {
			n++
		}
	}
	return n
}

func isSign(expr string, i int) bool {
	return i == 0 && expr[0] == '-'
}

// evaluate resolves an expression made of numbers and the operators in
// calcSymbols. There is one pass per operator; each pass substitutes the
// result of the first occurrence of the highest ranked symbol still present,
// so "2+3*4" becomes "2+12.00" and then "14.00".
func evaluate(expr string) (string, error) {
	working := expr
	passes := countCalcSymbols(expr)

	for range passes {
		for i := 0; i < len(calcSymbols); i++ {
			symbol := calcSymbols[i]
			loc := indexOperator(working, symbol)
			if loc < 0 {
				continue
			}

			left := leftOperand(working, loc)
			right := rightOperand(working, loc)

			var result string
			switch {
			case left == "" || right == "":
				result = left + right
			default:
				value, err := apply(left, right, symbol)
				if err != nil {
					return "", err
				}
				result = value
			}

			working = strings.ReplaceAll(working, left+string(symbol)+right, result)
			break
		}
	}

	return working, nil
}

// indexOperator finds the first use of symbol as an operator.
func indexOperator(expr string, symbol byte) int {
	start := 0
	if symbol == '-' && strings.HasPrefix(expr, "-") {
		start = 1
	}
	idx := strings.IndexByte(expr[start:], symbol)
	if idx < 0 {
		return -1
	}
	return idx + start
}

// leftOperand returns the operator-free run ending right before loc,
// including a leading sign.
func leftOperand(expr string, loc int) string {
	i := loc
	for i > 0 && !isCalcSymbol(expr[i-1]) {
		i--
	}
	if i == 1 && isSign(expr, 0) {
		i = 0
	}
	return expr[i:loc]
}

// rightOperand returns the operator-free run starting right after loc.
func rightOperand(expr string, loc int) string {
	j := loc + 1
	for j < len(expr) && !isCalcSymbol(expr[j]) {
		j++
	}
	return expr[loc+1 : j]
}

func apply(left, right string, symbol byte) (string, error) {
	a, err := strconv.ParseFloat(left, 64)
	if err != nil {
		return "", errBadOperand
	}
	b, err := strconv.ParseFloat(right, 64)
	if err != nil {
		return "", errBadOperand
	}

	var r float64
	switch symbol {
	case '*':
		r = a * b
	case '/':
		r = a / b
	case '+':
		r = a + b
	case '-':
		r = a - b
	}
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return "", errBadOperand
	}
	return strconv.FormatFloat(r, 'f', 2, 64), nil
}
