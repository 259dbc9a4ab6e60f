package reducer_test

import (
	"fmt"

	"github.com/matzehuels/scenetree/pkg/nav"
	"github.com/matzehuels/scenetree/pkg/reducer"
	"github.com/matzehuels/scenetree/pkg/router"
)

func Example() {
	reduce := reducer.New(reducer.Catalog{
		"detail": {Key: "detail", Title: "Detail"},
	})
	state := &nav.Node{Key: "stack", Children: []*nav.Node{{Key: "list"}}}

	state, _ = reduce(state, router.Action{Type: router.Push, Key: "detail"})
	fmt.Println(nav.ActivePath(state).Keys(), "from", state.From.Key)

	state, _ = reduce(state, router.Action{Type: router.BackAction})
	fmt.Println(nav.ActivePath(state).Keys(), "from", state.From.Key)

	_, err := reduce(state, router.Action{Type: router.BackAction})
	fmt.Println(err)
	// Output:
	// [stack detail] from list
	// [stack list] from detail
	// AT_ROOT: already at the root scene
}
