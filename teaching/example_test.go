// SPDX-License-Identifier: MIT

package teaching_test

import (
	"fmt"

	"github.com/katalvlaran/monkeypath/teaching"
)

func ExampleBuildFor() {
	wt := teaching.BuildFor(firstSwing(), "A", "D", 7)
	for _, e := range wt.Steps[teaching.FilterByTime].Entries {
		fmt.Println(e.Key, e.Valid)
	}
	fmt.Println("best:", wt.Optimal.Key())
	// Output:
	// A→B→D true
	// A→C→B→D false
	// A→C→D true
	// best: A→C→D
}
