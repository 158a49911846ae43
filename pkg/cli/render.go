/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"

	"github.com/symceil/symceil/pkg/checker"
	"github.com/symceil/symceil/pkg/symbols"
)

// Sprint funcs consult the process-wide color override at call time, so the
// --color flag takes effect no matter when the renderer runs.
var (
	green = color.New(color.FgGreen, color.Bold).SprintFunc()
	bold  = color.New(color.FgRed, color.Bold).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
)

// Renderer writes check results as human-readable text. Pass and fail lines
// go to out, error outcomes to errOut, matching where shells expect them.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	scheme symbols.Scheme
}

// NewRenderer creates a Renderer with the given destinations and demangling
// scheme for displayed symbol names.
func NewRenderer(out, errOut io.Writer, scheme symbols.Scheme) *Renderer {
	return &Renderer{out: out, errOut: errOut, scheme: scheme}
}

// Render writes one line per file plus one indented line per violating
// symbol. Violations are re-sorted by (name, version, file) for stable
// display; the underlying result is not modified.
func (r *Renderer) Render(result *checker.CheckResult) {
	for _, fr := range result.Results {
		switch fr.Status {
		case checker.FileStatusPass:
			fmt.Fprintf(r.out, "%s: %s\n", fr.Path, green("PASS"))
		case checker.FileStatusFail:
			fmt.Fprintf(r.out, "%s: %s\n", fr.Path, bold("FAIL"))
			violations := slices.Clone(fr.Violations)
			symbols.Sort(violations)
			for _, s := range violations {
				r.renderViolation(s)
			}
		case checker.FileStatusError:
			fmt.Fprintf(r.errOut, "%s: %s\n", fr.Path, bold("ERROR"))
			fmt.Fprintf(r.errOut, "    %s\n", red(fr.Message))
		}
	}
}

func (r *Renderer) renderViolation(s symbols.SymbolVersion) {
	name := s.DisplayName(r.scheme)
	if s.File == "" {
		fmt.Fprintf(r.out, "    %s%s%s\n", name, dim("@"), red(s.Version.String()))
		return
	}
	fmt.Fprintf(r.out, "    %s%s%s (%s)\n", name, dim("@"), red(s.Version.String()), dim(s.File))
}
