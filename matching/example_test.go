package matching_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/buddies/matching"
)

// ExampleMinWeightPerfect pairs four participants with the cheapest total.
//
//	AB=1 AC=5 AD=3 BC=2 BD=4 CD=6
//	{AB,CD}=7  {AC,BD}=9  {AD,BC}=5  ← optimum
func ExampleMinWeightPerfect() {
	g := testGraph{w: table(4, 1, 5, 3, 2, 4, 6)}

	res, err := matching.MinWeightPerfect(context.Background(), g, matching.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Pairs, res.Cost)
	// Output:
	// [(0,3) (1,2)] 5
}
