package browser

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// nonInteractiveWait is how long an unattended run pauses in place of a
// human pressing ENTER.
const nonInteractiveWait = 2 * time.Second

// Confirmer waits for the user to finish a manual browser step.
type Confirmer interface {
	// Confirm shows the instructions and blocks until the step is done.
	// Returns false when nobody is there to confirm.
	Confirm(instructions []string) bool
}

// StdioConfirmer prompts on out and waits for a line on in. A closed input
// stream means the run is unattended: wait briefly, then report
// unconfirmed so the caller can fall back to scanning.
type StdioConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (c StdioConfirmer) Confirm(instructions []string) bool {
	fmt.Fprintln(c.Out, "Manual step needed:")
	for i, line := range instructions {
		fmt.Fprintf(c.Out, "  %d) %s\n", i+1, line)
	}
	fmt.Fprint(c.Out, "Press ENTER when done... ")

	if _, err := bufio.NewReader(c.In).ReadString('\n'); err != nil {
		zap.L().Info("no interactive input, waiting briefly before continuing")
		time.Sleep(nonInteractiveWait)
		return false
	}
	return true
}
