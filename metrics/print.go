package metrics

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"pixelcipher/format"
)

// Print writes a colored summary of r to w.
func (r Report) Print(w io.Writer) {
	header := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.FgHiBlack)

	header.Fprintln(w, "Performance Report")
	fmt.Fprintf(w, "  Total operations: %d\n", r.TotalOperations)
	if r.FailedOperations > 0 {
		color.New(color.FgRed).Fprintf(w, "  Failed operations: %d\n", r.FailedOperations)
	}
	fmt.Fprintf(w, "  Average time: %s ms\n", r.AverageTime)
	color.New(color.FgGreen).Fprintf(w, "  Fastest time: %s ms\n", r.FastestTime)
	color.New(color.FgYellow).Fprintf(w, "  Slowest time: %s ms\n", r.SlowestTime)

	if len(r.ByAlgorithm) == 0 {
		return
	}

	names := make([]string, 0, len(r.ByAlgorithm))
	for name := range r.ByAlgorithm {
		names = append(names, name)
	}
	sort.Strings(names)

	header.Fprintln(w, "By algorithm")
	for _, name := range names {
		m := r.ByAlgorithm[name]
		fmt.Fprintf(w, "  %-18s %4d runs ", name, m.Count)
		dim.Fprintf(w, "(%s%% ok, avg %s ms)\n", format.Fixed(m.SuccessRate, 1), format.Millis(m.AvgDuration))
	}
}
