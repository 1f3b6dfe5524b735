// Package batch runs the regex pipeline over a list of patterns and reports
// each result, carrying on past patterns that fail.
package batch

import (
	"context"
	"fmt"
	"io"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"regextree/internal/regex"
	"regextree/internal/render"
)

var log = commonlog.GetLogger("regextree.batch")

type Driver struct {
	Out      io.Writer       // report destination, io.Discard when nil
	Renderer render.Renderer // optional
}

// Outcome is the result of one pattern. Err is set when parsing or
// rendering failed.
type Outcome struct {
	Pattern  Pattern
	Result   *regex.Result
	Artifact string
	Err      error
}

type Summary struct {
	Outcomes []Outcome
	Failed   int
}

func (s Summary) Total() int { return len(s.Outcomes) }

// Run processes patterns in order. A failing pattern is reported and
// skipped; only cancellation of ctx stops the run early.
func (d *Driver) Run(ctx context.Context, patterns []Pattern) (Summary, error) {
	out := d.Out
	if out == nil {
		out = io.Discard
	}

	var sum Summary
	for _, p := range patterns {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		o := d.process(ctx, out, p)
		if o.Err != nil {
			sum.Failed++
		}
		sum.Outcomes = append(sum.Outcomes, o)
	}

	fmt.Fprintf(out, "\ndone: %d patterns, %d failed\n", sum.Total(), sum.Failed)
	log.Infof("processed %d patterns, %d failed", sum.Total(), sum.Failed)
	return sum, nil
}

func (d *Driver) process(ctx context.Context, out io.Writer, p Pattern) Outcome {
	fmt.Fprintf(out, "\n[%d] %s\n", p.Line, p.Text)

	res, err := regex.Parse(p.Text)
	if err != nil {
		fmt.Fprintf(out, "  error: %v\n", err)
		log.Debugf("line %d: %v", p.Line, err)
		return Outcome{Pattern: p, Err: err}
	}
	fmt.Fprintf(out, "  postfix: %s\n", res.Postfix.Join(" "))

	o := Outcome{Pattern: p, Result: res}
	if d.Renderer == nil {
		return o
	}
	path, err := d.Renderer.Render(ctx, res.Root, fmt.Sprintf("tree_%d", p.Line))
	if err != nil {
		fmt.Fprintf(out, "  error: render: %v\n", err)
		log.Errorf("line %d: render: %v", p.Line, err)
		o.Err = fmt.Errorf("render: %w", err)
		return o
	}
	fmt.Fprintf(out, "  tree: %s\n", path)
	o.Artifact = path
	return o
}
