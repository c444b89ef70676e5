// cmd/r4dcb08/confirm.go
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirm asks a yes/no question and defaults to no.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// confirmOnlyOneModule warns about broadcast collisions before an operation
// that requires a single module on the bus segment.
func confirmOnlyOneModule(in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprintln(out, "WARNING: this operation should only be performed if a SINGLE R4DCB08 module")
	fmt.Fprintln(out, "is connected to the Modbus RTU bus segment.")
	fmt.Fprintln(out, "Multiple devices may lead to unpredictable behavior or communication errors.")
	return confirm(in, out, "Do you want to continue?")
}
