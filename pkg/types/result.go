package types

import (
	"fmt"
	"strings"
)

// ResultStatus classifies the outcome of one dispatched command.
type ResultStatus string

const (
	StatusSuccess  ResultStatus = "success"
	StatusError    ResultStatus = "error"
	StatusGuidance ResultStatus = "guidance"
)

// OperationResult is the single outcome of a dispatched command.
// Guidance means the operation declined to act and the message holds
// manual steps instead.
type OperationResult struct {
	Status  ResultStatus `json:"status"`
	Message string       `json:"message"`
}

func Successf(format string, args ...any) OperationResult {
	return OperationResult{Status: StatusSuccess, Message: fmt.Sprintf(format, args...)}
}

func Errorf(format string, args ...any) OperationResult {
	return OperationResult{Status: StatusError, Message: fmt.Sprintf(format, args...)}
}

// Guidance builds a guidance result from a headline and numbered steps.
func Guidance(headline string, steps ...string) OperationResult {
	var b strings.Builder
	b.WriteString(headline)
	for i, s := range steps {
		fmt.Fprintf(&b, "\n%d. %s", i+1, s)
	}
	return OperationResult{Status: StatusGuidance, Message: b.String()}
}

// Display renders the result the way the chat layer shows it.
func (r OperationResult) Display() string {
	switch r.Status {
	case StatusSuccess:
		return "Success: " + r.Message
	case StatusError:
		return "Error: " + r.Message
	default:
		return r.Message
	}
}
