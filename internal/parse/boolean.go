package parse

import "fmt"

// MalformedBooleanError reports a would-throw cell that is not one of the
// two recognized survey tokens. Unlike rating noise this is fatal: the flag
// column is unambiguous in the source data, so anything else means the row
// is structurally off.
type MalformedBooleanError struct {
	Value string
}

func (e *MalformedBooleanError) Error() string {
	return fmt.Sprintf("malformed boolean: %q", e.Value)
}

// WouldThrow parses the throw-intent cell. Only the exact tokens "Yes" and
// "No" are accepted; no trimming, no case folding.
func WouldThrow(input string) (bool, error) {
	switch input {
	case "Yes":
		return true, nil
	case "No":
		return false, nil
	}
	return false, &MalformedBooleanError{Value: input}
}
