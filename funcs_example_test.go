package supercalc_test

import (
	"fmt"

	"github.com/zephyrtronium/supercalc"
)

func ExampleBuiltin() {
	nargs := &supercalc.Builtin{
		Name:       "nargs",
		IsFunction: true,
		Fn: func(ctx *supercalc.Context, args []*supercalc.Value, internal bool) *supercalc.Value {
			return supercalc.NewInt(int64(len(args)))
		},
	}
	ctx := supercalc.NewContext(supercalc.Builtins(nargs))

	for _, src := range []string{"nargs()", "nargs(100)", "nargs(3, 2, 1)"} {
		v, _ := ctx.Run(src)
		fmt.Println(src, "=", v)
	}

	// Output:
	// nargs() = 0
	// nargs(100) = 1
	// nargs(3, 2, 1) = 3
}
