package table_test

import (
	"fmt"

	"github.com/cwbudde/algo-inductance/table"
)

func ExampleCurve_Interpolate() {
	p, ok := table.P2hl.Interpolate(0.05)
	fmt.Printf("P(0.05) = %.5f ok=%v\n", p, ok)

	_, ok = table.P2hl.Interpolate(1.5)
	fmt.Printf("P(1.5) ok=%v\n", ok)

	// Output:
	// P(0.05) = 0.04875 ok=true
	// P(1.5) ok=false
}

func ExampleIndexedTable_At() {
	k, err := table.KnTable.At(6)
	if err != nil {
		panic(err)
	}

	fmt.Println("k_6 =", k)

	// Output:
	// k_6 = 1.18
}
