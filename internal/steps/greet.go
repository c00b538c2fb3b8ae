package steps

import (
	"fmt"
	"io"
)

// Greeting builds the greeting line for name. Any text is accepted as-is.
func Greeting(name string) string {
	return "Hello, " + name + "!"
}

// Greet writes the greeting for name as a single line.
func Greet(w io.Writer, name string) error {
	if _, err := fmt.Fprintln(w, Greeting(name)); err != nil {
		return fmt.Errorf("failed to write greeting for %q: %w", name, err)
	}
	return nil
}
