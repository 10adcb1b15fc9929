package markov_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/evaevangelisti/markov"
)

func Example() {
	tbl, err := markov.TrainString("The cat sat on a mat.", 0)
	if err != nil {
		panic(err)
	}
	if err := markov.Generate(os.Stdout, tbl, ".", 14, markov.NewSampler(1)); err != nil {
		panic(err)
	}
	fmt.Println()
	// Output:
	// The cat sat on a mat. The cat sat on a mat.
}

func ExampleTable_WriteCSV() {
	tbl, err := markov.TrainString("The cat sat. The dog ran.", 0)
	if err != nil {
		panic(err)
	}
	if err := tbl.WriteCSV(os.Stdout); err != nil {
		panic(err)
	}
	// Output:
	// the,cat,0.50000,dog,0.50000
	// dog,ran,1.00000
	// .,the,1.00000
	// ran,.,1.00000
	// sat,.,1.00000
	// cat,sat,1.00000
}

func ExampleFlatten() {
	table := "the,cat,1.00000\ncat,sat,1.00000\nsat,.,1.00000\n.,the,1.00000\n"
	opts := markov.Options{Seed: 7, Multiprocess: true}
	err := markov.Flatten(context.Background(), strings.NewReader(table), os.Stdout, "", 8, opts)
	if err != nil {
		panic(err)
	}
	fmt.Println()
	// Output:
	// The cat sat. The cat sat.
}
