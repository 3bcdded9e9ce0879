package core_test

import (
	"fmt"

	"github.com/katalvlaran/buddies/core"
)

// ExampleBuild demonstrates construction, placeholder injection and edge removal.
func ExampleBuild() {
	// 1) Three participants: Build appends a placeholder to make the count even.
	g, err := core.Build([]core.Edge{
		{From: "carol", To: "alice", Weight: 2},
		{From: "bob", To: "alice", Weight: 1},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Participants:", g.Participants())
	fmt.Println("Vertices:", g.Len(), "placeholder:", g.HasPlaceholder())

	// 2) bob–carol was never listed, so it weighs 0.
	w, ok := g.Weight(1, 2)
	fmt.Println("bob–carol:", w, ok)

	// 3) Removing an edge hides it for good.
	_ = g.RemoveEdge("alice", "bob")
	_, ok = g.Weight(0, 1)
	fmt.Println("alice–bob present:", ok)

	// Output:
	// Participants: [alice bob carol]
	// Vertices: 4 placeholder: true
	// bob–carol: 0 true
	// alice–bob present: false
}
