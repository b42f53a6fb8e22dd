package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// numberPattern finds the first number-looking substring in free text:
// optional minus, digits, optional decimal point, more digits. The optional
// comma before the final digit group is carried over from the tooling that
// produced the historical survey artifacts; a comma inside the match is
// dropped before conversion, so "1,500" reads as 1500.
var numberPattern = regexp.MustCompile(`[-]?[0-9]*\.?,?[0-9]+`)

// Outcome is the result of best-effort rating recovery. Value is nil when
// no number could be extracted. Note carries the full original cell text
// whenever strict parsing failed, and is empty otherwise.
type Outcome struct {
	Value *float64
	Note  string
}

// Scale turns one free-text rating cell into a number if at all possible.
// It tries a strict decimal parse of the trimmed cell first, then falls
// back to extracting the first embedded number. Absence of a number is an
// outcome, never an error.
func Scale(input string) Outcome {
	if v, err := strconv.ParseFloat(strings.TrimSpace(input), 64); err == nil {
		return Outcome{Value: &v}
	}

	if m := numberPattern.FindString(input); m != "" {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64); err == nil {
			return Outcome{Value: &v, Note: input}
		}
	}

	return Outcome{Note: input}
}
