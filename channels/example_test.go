package channels_test

import (
	"fmt"

	"github.com/tramebleue/fct-terrain-analysis/channels"
	"github.com/tramebleue/fct-terrain-analysis/grid"
)

// ExampleExtract traces a straight 5-cell eastbound channel into a
// single polyline ending at the grid edge.
func ExampleExtract() {
	east := grid.East.Code()
	f, _ := grid.From2D([][]uint8{{east, east, east, east, east}})
	c, _ := grid.From2D([][]bool{{true, true, true, true, true}})

	net, err := channels.Extract(f, c, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("outlets:", net.Outlets)
	fmt.Println("confluences:", len(net.Confluences))
	fmt.Println("segment:", net.Segments[0])

	// Output:
	// outlets: [{0 4}]
	// confluences: 0
	// segment: [{0 0} {0 1} {0 2} {0 3} {0 4}]
}
