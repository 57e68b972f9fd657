// Package tsp_test provides runnable, deterministic examples for the tsp
// strategies. Each prints a tour and its cost with a stable // Output: block.
package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/lvltsp/matrix"
	"github.com/katalvlaran/lvltsp/scenario"
	"github.com/katalvlaran/lvltsp/tsp"
)

// ExampleBranchAndBound solves a 4-city asymmetric instance exactly.
func ExampleBranchAndBound() {
	inf := matrix.Inf
	s, err := scenario.FromCosts([][]matrix.Cost{
		{inf, 7, 3, 12},
		{3, inf, 6, 14},
		{5, 8, inf, 6},
		{9, 3, 5, inf},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := tsp.BranchAndBound(s, tsp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Tour)
	fmt.Printf("cost=%v optimal=%v seeded by %s\n", res.Cost, res.Exhausted, res.Stats.Seeder)
	// Output:
	// A → C → D → B → A (15)
	// cost=15 optimal=true seeded by greedy
}

// ExampleTour_EnumerateEdges lists the legs of a tour.
func ExampleTour_EnumerateEdges() {
	inf := matrix.Inf
	s, _ := scenario.FromCosts([][]matrix.Cost{
		{inf, 7, 3, 12},
		{3, inf, 6, 14},
		{5, 8, inf, 6},
		{9, 3, 5, inf},
	})
	t := tsp.NewTour([]*scenario.City{s.City(0), s.City(2), s.City(3), s.City(1)})
	for _, e := range t.EnumerateEdges() {
		fmt.Printf("%s→%s %v\n", e.From, e.To, e.Cost)
	}
	// Output:
	// A→C 3
	// C→D 6
	// D→B 3
	// B→A 3
}

// ExampleSolve runs the greedy strategy through the dispatcher.
func ExampleSolve() {
	s, _ := scenario.NewFromSites([]scenario.Site{
		{X: 0, Y: 0},
		{X: 3, Y: 0},
		{X: 3, Y: 4},
	}, scenario.Easy, nil)

	opts := tsp.DefaultOptions()
	opts.Algo = tsp.GreedyNN
	res, _ := tsp.Solve(s, opts)
	fmt.Println(res.Tour, res.Count)
	// Output:
	// A → B → C → A (12000) 3
}
