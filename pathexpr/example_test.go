package pathexpr_test

import (
	"fmt"
	"log"

	"github.com/erraggy/pathtools/pathbuf"
	"github.com/erraggy/pathtools/pathexpr"
)

// Example demonstrates joining literal segments with the '/' operator.
func Example() {
	buf, err := pathexpr.Join(`"a" / "x" / "y" / "z"`,
		pathexpr.WithPlatform(pathbuf.Posix),
	)
	if err != nil {
		log.Fatalf("failed to join: %v", err)
	}
	fmt.Println(buf)
	// Output:
	// a/x/y/z
}

// Example_bindings demonstrates deferring operand values to evaluation
// time with identifier bindings.
func Example_bindings() {
	chain, err := pathexpr.Parse(`root / "cache" / name`)
	if err != nil {
		log.Fatalf("failed to parse: %v", err)
	}

	x := chain.Expand()
	for _, name := range []string{"alpha", "beta"} {
		buf, err := x.Eval(
			pathexpr.WithBinding("root", "/var/lib/app"),
			pathexpr.WithBinding("name", name),
			pathexpr.WithPlatform(pathbuf.Posix),
		)
		if err != nil {
			log.Fatalf("failed to eval: %v", err)
		}
		fmt.Println(buf)
	}
	// Output:
	// /var/lib/app/cache/alpha
	// /var/lib/app/cache/beta
}

// Example_absoluteOverride demonstrates that an absolute segment replaces
// everything joined before it, exactly as the append primitive defines.
func Example_absoluteOverride() {
	buf, err := pathexpr.Join(`"a" / "b" / "/etc" / "passwd"`,
		pathexpr.WithPlatform(pathbuf.Posix),
	)
	if err != nil {
		log.Fatalf("failed to join: %v", err)
	}
	fmt.Println(buf)
	// Output:
	// /etc/passwd
}
