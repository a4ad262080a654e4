/*
 * eval.go, part of gomo.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package commands

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	mo "github.com/rmera/gomo"
	"github.com/rmera/gomo/cube"
	"github.com/rmera/gomo/eval"
	"github.com/rmera/gomo/mojson"
	"github.com/rmera/gomo/surface"
)

var (
	evalOutDir string
	evalJSON   bool
	evalQuiet  bool
)

// EvalCmd represents the eval command
var EvalCmd = &cobra.Command{
	Use:   "eval <job.json|->",
	Short: "Evaluate the grids a job requests",
	Long: `Evaluate the orbitals, densities and basis functions a JSON job requests,
and write each grid as a cube file.

Requests that share a lattice step are evaluated in one pass over the
lattice. Use - to read the job from stdin. With --json, a JSON result
describing the grids written is printed to stdout.

Examples:
  gomo eval water.json -o grids
  cat water.json | gomo eval - --json`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	EvalCmd.Flags().StringVarP(&evalOutDir, "output", "o", "", "Output directory (default output.dir)")
	EvalCmd.Flags().BoolVar(&evalJSON, "json", false, "Print a JSON result to stdout")
	EvalCmd.Flags().BoolVarP(&evalQuiet, "quiet", "q", false, "No progress bar")
}

func openInput(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

// progressBar adapts the evaluator progress reports to a pterm bar, created
// on the first report, when the total is known.
type progressBar struct {
	mu   sync.Mutex
	bar  *pterm.ProgressbarPrinter
	last int
}

func (p *progressBar) report(done, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bar == nil {
		if total <= 0 {
			return
		}
		bar, err := pterm.DefaultProgressbar.WithTotal(total).WithTitle("Evaluating").Start()
		if err != nil {
			return
		}
		p.bar = bar
	}
	if done > p.last {
		p.bar.Add(done - p.last)
		p.last = done
	}
}

func (p *progressBar) stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bar != nil {
		p.bar.Stop()
	}
}

func clean(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', '"', ':':
			return '_'
		}
		return r
	}, s)
}

func xyzName(title string) string {
	if title == "" {
		return "geometry.xyz"
	}
	return clean(title) + ".xyz"
}

func cubeName(title string, t mo.SurfaceType, ext string) string {
	if title == "" {
		return clean(t.String()) + ext
	}
	return clean(title) + "_" + clean(t.String()) + ext
}

func runEval(cmd *cobra.Command, args []string) error {
	c, err := LoadConfig()
	if err != nil {
		return err
	}
	in, err := openInput(args[0])
	if err != nil {
		return err
	}
	job, err := mojson.DecodeJob(in)
	in.Close()
	if err != nil {
		return err
	}
	sys, err := job.Build(c.Grid.Step)
	if err != nil {
		return err
	}
	bar := new(progressBar)
	opts := []eval.Option{eval.WithThreshold(c.Eval.Threshold), eval.WithWorkers(c.Eval.Workers)}
	if !evalQuiet && !evalJSON {
		opts = append(opts, eval.WithProgress(bar.report, time.Duration(c.Eval.ProgressMs)*time.Millisecond))
	}
	builder, err := surface.NewBuilder(sys.Orbitals, sys.Densities, nil, opts...)
	if err != nil {
		return err
	}
	builder.SetPadding(c.Grid.Padding)
	builder.SetThreshold(c.Eval.Threshold)
	builder.Enqueue(sys.Requests...)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()
	surfaces, buildErr := builder.Build(ctx)
	bar.stop()

	dir := evalOutDir
	if dir == "" {
		dir = c.Output.Dir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}
	if err := writeXYZ(filepath.Join(dir, xyzName(sys.Title)), sys); err != nil {
		return err
	}
	res := &mojson.Result{Title: sys.Title, Status: "Finished"}
	if buildErr != nil {
		res.Status = "Failed"
		if errors.Is(buildErr, context.Canceled) || errors.Is(buildErr, eval.ErrCancelled) {
			res.Status = "Cancelled"
		}
		res.Error = mojson.NewError("process", "surface.Builder.Build", buildErr)
	}
	if buildErr == nil {
		res.Unmatched = unmatched(sys.Requests, surfaces)
	}
	for _, grid := range builder.Grids() {
		if !grid.Complete() {
			continue
		}
		name := filepath.Join(dir, cubeName(sys.Title, grid.Type(), c.Output.Extension()))
		if err := cube.WriteFile(name, grid, sys.Geometry, sys.Title); err != nil {
			return err
		}
		res.Grids = append(res.Grids, mojson.NewGridInfo(grid, name))
	}
	if evalJSON {
		if err := res.Send(os.Stdout); err != nil {
			return err
		}
		return buildErr
	}
	if buildErr != nil {
		pterm.Error.Printfln("Evaluation %s: %v", strings.ToLower(res.Status), buildErr)
		return buildErr
	}
	for _, u := range res.Unmatched {
		pterm.Warning.Printfln("No data for %s", u)
	}
	for _, g := range res.Grids {
		pterm.Info.Printfln("%s -> %s", g.Type, g.File)
	}
	pterm.Success.Printfln("%d grids written to %s", len(res.Grids), dir)
	return nil
}

// unmatched lists the requests no surface was built for.
func unmatched(requests []surface.Info, surfaces []*surface.Surface) []string {
	var ret []string
	for _, r := range requests {
		found := false
		for _, s := range surfaces {
			if s.Info.Type.Equal(r.Type) && s.Info.Step == r.Step {
				found = true
				break
			}
		}
		if !found {
			ret = append(ret, r.String())
		}
	}
	return ret
}

func writeXYZ(name string, sys *mojson.System) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := mo.WriteXYZ(f, sys.Geometry, sys.Title); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
