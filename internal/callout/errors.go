package callout

import (
	"fmt"
	"strings"
)

// InvalidIconError is returned when a callout asks for an icon that is not
// in the registry. It aborts processing of the whole document.
type InvalidIconError struct {
	Name  string   // the icon name the author wrote
	Valid []string // every name the registry accepts
}

// Error implements the error interface.
func (e *InvalidIconError) Error() string {
	return fmt.Sprintf("invalid callout icon %q", e.Name)
}

// Hint tells the author how to fix the document.
func (e *InvalidIconError) Hint() string {
	return fmt.Sprintf(
		"A callout custom icon must be set to the name of one of the built-in icons, but received `%s`.\n\nValid icons: %s",
		e.Name, strings.Join(e.Valid, ", "),
	)
}
