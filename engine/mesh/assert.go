package mesh

import "fmt"

// assert panics with msg when cond reports false. cond is only evaluated in builds
// tagged meshdebug, so release builds pay nothing for it.
func assert(msg string, cond func() bool) {
	if !debugAssertions {
		return
	}
	if !cond() {
		panic(fmt.Sprintf("mesh: assertion failed: %s", msg))
	}
}
