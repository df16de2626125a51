package main

import (
	"fmt"
	"io"

	"github.com/org/pw/internal/secmem"
	"github.com/org/pw/pkg/models"
)

func printTally(w io.Writer, t models.Tally) {
	fmt.Fprintf(w, "%d current, %d inactive, %d need changing\n", t.Active, t.Inactive, t.PendingChange)
}

// printSecretLine writes line and a newline, then wipes line.
func printSecretLine(w io.Writer, line []byte) error {
	defer secmem.Zero(line)
	if _, err := w.Write(line); err != nil {
		return err
	}
	_, err := w.Write([]byte{'\n'})
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
