package conformance

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/fennelabs/sm83/internal/bus"
	"github.com/fennelabs/sm83/internal/cpu"
	"github.com/fennelabs/sm83/internal/trace"
)

// Mismatch is one step at which a run diverged from its reference trace.
type Mismatch struct {
	Step     uint64
	GotHash  uint64
	WantHash uint64
	GotPC    uint16
	WantPC   uint16
}

func (m Mismatch) Error() string {
	return fmt.Sprintf("step %d: PC=0x%04X hash=%#x, want PC=0x%04X hash=%#x",
		m.Step, m.GotPC, m.GotHash, m.WantPC, m.WantHash)
}

// RunAgainstTrace loads image into a fresh CPU's memory at address 0 and
// steps it once per entry in reference, comparing the post-step state
// hash at every step. Every divergence is appended to a single
// *multierror.Error rather than aborting the run at the first one, so a
// single conformance run reports everything wrong with a core in one
// pass.
func RunAgainstTrace(image []byte, reference []trace.Entry) error {
	b := bus.NewFlatMemory()
	b.LoadAt(0, image)
	c := cpu.NewCPU(b, cpu.WithPC(0))

	var result *multierror.Error
	for _, want := range reference {
		pc := c.PC
		c.Step()
		got := trace.Hash(c.Snapshot())

		if got != want.Hash {
			result = multierror.Append(result, Mismatch{
				Step:     want.Step,
				GotHash:  got,
				WantHash: want.Hash,
				GotPC:    pc,
				WantPC:   want.PC,
			})
		}
	}
	return result.ErrorOrNil()
}
