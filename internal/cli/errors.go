package cli

import (
	"errors"

	"github.com/jacksmith/deck/internal/model"
	"github.com/jacksmith/deck/internal/storage"
)

// Hint returns a suggestion for how to recover from err, or "".
func Hint(err error) string {
	var (
		dup   *model.DuplicateTaglineError
		rng   *model.IndexOutOfRangeError
		write *storage.FileWriteError
		read  *storage.FileReadError
	)
	switch {
	case errors.As(err, &dup):
		return "Choose a different tagline; taglines are compared ignoring case."
	case errors.As(err, &rng):
		return "Positions change after every edit. Run `deck list` to see current positions."
	case errors.As(err, &write):
		return "Changes are kept in memory only. Try `deck save-as <path>` to write elsewhere."
	case errors.As(err, &read):
		return "The file was left untouched. Fix it, or pass --file to use another deck."
	}
	return ""
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output and appends
// a hint line when one is known.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := Red("error: ") + err.Error()
	if hint := Hint(err); hint != "" {
		msg += "\n" + Gray(hint)
	}
	return msg
}

// FormatWarning returns a warning line for a non-fatal error.
func FormatWarning(err error) string {
	if err == nil {
		return ""
	}
	msg := Yellow("warning: ") + err.Error()
	if hint := Hint(err); hint != "" {
		msg += "\n" + Gray(hint)
	}
	return msg
}
