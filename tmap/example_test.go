// SPDX-License-Identifier: MIT

package tmap_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wot"
	"github.com/katalvlaran/wot/synth"
	"github.com/katalvlaran/wot/tmap"
)

// ExampleRun computes maps between consecutive days of a synthetic timecourse.
func ExampleRun() {
	ds, err := synth.Timecourse([]float64{0, 1, 2}, 5, synth.WithSeed(3))
	if err != nil {
		fmt.Println(err)
		return
	}
	idx, _ := tmap.NewIndex(ds.Days)

	out, err := tmap.Run(context.Background(), ds, idx.ConsecutivePairs(), wot.DefaultConfig(), tmap.WithWorkers(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, tr := range out {
		r, c := tr.Map.Shape()
		fmt.Printf("%v: %d×%d, first source %s\n", tr.Pair, r, c, tr.Map.Rows()[0])
	}
	// Output:
	// 0→1: 5×5, first source d0_0
	// 1→2: 5×5, first source d1_0
}
