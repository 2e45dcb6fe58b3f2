package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/animparty/animated"
	"github.com/delaneyj/animparty/frameloop"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100

	cpuProfile = flag.String("cpuprofile", "", "write a CPU profile to this file")
)

func main() {
	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	benchmarkPropagate(false)

	benchmarkPropagate(true)
	benchmarkDiamond(true)
	benchmarkTiming(true)
}

// nullView swallows styles; the benchmark measures propagation only.
type nullView struct {
	applied int
}

func (v *nullView) ApplyStyle(animated.StyleValues) {
	v.applied++
}

func addOne(parent animated.Scalar) animated.Scalar {
	i, err := animated.Interpolate(parent, animated.InterpolationConfig{
		InputRange:  []float64{0, 1},
		OutputRange: []float64{1, 2},
	})
	if err != nil {
		log.Fatal(err)
	}
	return i
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "leaves", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendCalc(tbl table.Writer, name string, leaves int, calc *tachymeter.Metrics) {
	tbl.AppendRows([]table.Row{
		{
			name,
			humanize.Comma(int64(leaves)),
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		},
	})
}

// benchmarkPropagate hangs w chains of h interpolations off one value, each
// chain ending in its own Props leaf.
func benchmarkPropagate(shouldRender bool) {
	tbl := newTable("Propagate")

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rt := animated.CreateRuntime(nil)
			src := animated.Value(rt, 1)
			view := &nullView{}
			for i := 0; i < w; i++ {
				var last animated.Scalar = src
				for j := 0; j < h; j++ {
					last = addOne(last)
				}
				animated.NewProps(animated.NewStyle(map[string]animated.Scalar{"v": last}, nil), view)
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.SetValue(src.Value() + 1)
				tach.AddTime(time.Since(start))
			}

			appendCalc(tbl, fmt.Sprintf("propagate: %d * %d", w, h), w, tach.Calc())
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkDiamond feeds one leaf from w parallel paths of one source.
func benchmarkDiamond(shouldRender bool) {
	tbl := newTable("Diamond")

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		rt := animated.CreateRuntime(nil)
		src := animated.Value(rt, 1)
		ops := make([]animated.TransformOp, w)
		for i := range ops {
			ops[i] = animated.TransformOp{Name: fmt.Sprintf("op%d", i), Input: addOne(src)}
		}
		view := &nullView{}
		animated.NewProps(animated.NewStyle(nil, animated.NewTransform(ops...)), view)

		for i := 0; i < iters; i++ {
			start := time.Now()
			src.SetValue(src.Value() + 1)
			tach.AddTime(time.Since(start))
		}
		if view.applied != iters+1 {
			log.Fatalf("diamond %d: leaf applied %d times, want %d", w, view.applied, iters+1)
		}

		appendCalc(tbl, fmt.Sprintf("diamond: %d", w), 1, tach.Calc())
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkTiming measures one frame step with w running timing animations.
func benchmarkTiming(shouldRender bool) {
	tbl := newTable("Timing frames")

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		loop := frameloop.New()
		rt := animated.CreateRuntime(nil)
		view := &nullView{}
		for i := 0; i < w; i++ {
			v := animated.Value(rt, 0)
			animated.NewProps(animated.NewStyle(map[string]animated.Scalar{"v": v}, nil), view)
			anim, err := animated.Timing(loop, animated.TimingConfig{
				ToValue:  1,
				Duration: time.Duration(iters+1) * 16 * time.Millisecond,
			})
			if err != nil {
				log.Fatal(err)
			}
			v.Animate(anim, nil)
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			loop.Step(16 * time.Millisecond)
			tach.AddTime(time.Since(start))
		}

		appendCalc(tbl, fmt.Sprintf("timing: %d", w), w, tach.Calc())
	}

	if shouldRender {
		tbl.Render()
	}
}
