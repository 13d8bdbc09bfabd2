package hermitego_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/hermitego"
)

// ExampleSVHP demonstrates generating a probabilist's Hermite polynomial.
func ExampleSVHP() {
	p, err := hermitego.SVHP(3)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(p)
	// Output: x^3 - 3*x
}

// ExampleSVHP_physicist demonstrates the physicist's normalization.
func ExampleSVHP_physicist() {
	p, err := hermitego.SVHP(3, hermitego.WithNormalization(hermitego.Physicist))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(p)
	// Output: 8*x^3 - 12*x
}

// ExampleHTC demonstrates assembling a tensor component from an index
// string. Index order never matters.
func ExampleHTC() {
	p, err := hermitego.HTC("yxx")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(p)
	// Output: x^2*y - y
}

// ExampleHT enumerates the distinct components of a rank-2 tensor in two
// dimensions, with the index permutations that share each component.
func ExampleHT() {
	tm, err := hermitego.HT(2)
	if err != nil {
		log.Fatal(err)
	}

	for _, key := range tm.Keys() {
		entry := tm[key]
		fmt.Println(key, "=", entry.Value, entry.Indices)
	}
	// Output:
	// xx = x^2 - 1 [xx]
	// xy = x*y [xy yx]
	// yy = y^2 - 1 [yy]
}
