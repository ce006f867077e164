package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark attaches markErr as an identity to err while keeping the original message
// and stack. Check marks with Is; the standard library does not see them.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is matches both wrapped chains and marks added with Mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// Redact renders err for logs with unsafe values (emails, ids passed through
// Newf arguments) replaced by markers.
func Redact(err error) string {
	if err == nil {
		return ""
	}
	return cr.Redact(err)
}

// StackLines returns the first maxLines non-empty lines of the verbose form of err.
func StackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(fmt.Sprintf("%+v", err), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if maxLines > 0 && len(lines) == maxLines {
			break
		}
	}
	return lines
}
