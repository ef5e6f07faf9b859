package enumerate_test

import (
	"fmt"

	"github.com/on-the-ground/combinat_ive_go/enumerate"
)

func ExampleProduct() {
	tuples, _ := enumerate.Product([]int{0, 1, 2}, []int{7, 8})
	for _, tuple := range tuples {
		fmt.Println(tuple)
	}
	// Output:
	// [0 7]
	// [0 8]
	// [1 7]
	// [1 8]
	// [2 7]
	// [2 8]
}

func ExampleProductSeq() {
	// The full space has 3^3 = 27 tuples; only the consumed prefix is built.
	count := 0
	for tuple := range enumerate.ProductSeq([]int{0, 1, 2}, []int{0, 1, 2}, []int{0, 1, 2}) {
		fmt.Println(tuple)
		if count++; count == 4 {
			break
		}
	}
	// Output:
	// [0 0 0]
	// [0 0 1]
	// [0 0 2]
	// [0 1 0]
}

func ExamplePowerSet() {
	subsets, _ := enumerate.PowerSet([]int{0, 1, 2})
	for _, subset := range subsets {
		fmt.Println(subset)
	}
	// Output:
	// []
	// [2]
	// [1]
	// [1 2]
	// [0]
	// [0 2]
	// [0 1]
	// [0 1 2]
}

func ExamplePowerSetSeq() {
	// Early-exit search: the first subset whose sum exceeds 10.
	for subset := range enumerate.PowerSetSeq([]int{3, 5, 7}) {
		sum := 0
		for _, n := range subset {
			sum += n
		}
		if sum > 10 {
			fmt.Println(subset)
			break
		}
	}
	// Output:
	// [5 7]
}

func ExampleCombinations() {
	pairs, _ := enumerate.Combinations([]string{"a", "b", "c"}, 2)
	for _, pair := range pairs {
		fmt.Println(pair)
	}
	// Output:
	// [a b]
	// [a c]
	// [b c]
}
