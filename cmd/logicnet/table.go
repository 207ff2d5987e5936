package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sharnoff/logicnet/gates"
)

const rule = "====================================="

// writeTable prints the truth table of the gate, as learned:
//	AND Gate Activation Test
//	=====================================
//	Inputs: [0, 0] - Output: 0
//	...
func writeTable(w io.Writer, g *gates.Gate) error {
	rows, err := g.Table()
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(w, "%s Gate Activation Test\n%s\n", g.Title(), rule); err != nil {
		return err
	}

	for _, r := range rows {
		ins := make([]string, len(r.Inputs))
		for i, in := range r.Inputs {
			ins[i] = strconv.FormatFloat(in, 'g', -1, 64)
		}

		if _, err = fmt.Fprintf(w, "Inputs: [%s] - Output: %d\n", strings.Join(ins, ", "), r.Output); err != nil {
			return err
		}
	}

	return nil
}
