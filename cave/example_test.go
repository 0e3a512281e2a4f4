package cave_test

import (
	"fmt"

	"github.com/katalvlaran/cavepath/cave"
)

// ExampleParse builds a graph from edge lines and inspects the classification
// cached on every node.
func ExampleParse() {
	g, err := cave.Parse([]string{"start-A", "A-b", "b-end", "A-end"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, label := range g.Labels() {
		id, _ := g.ID(label)
		fmt.Printf("%-5s %-9s degree=%d\n", label, g.Kind(id), len(g.Neighbors(id)))
	}

	// Output:
	// A     unlimited degree=3
	// b     limited   degree=2
	// end   end       degree=2
	// start start     degree=1
}

// ExampleParseEdge shows the error for a line that is not LABEL-LABEL.
func ExampleParseEdge() {
	_, err := cave.ParseEdge("start-A-b")
	fmt.Println(err)

	// Output:
	// cave: malformed edge: "start-A-b"
}
