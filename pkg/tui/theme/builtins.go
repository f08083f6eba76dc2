// ABOUTME: Built-in theme lookup by name
// ABOUTME: Provides Builtin(name) and BuiltinNames() for config validation

package theme

import "sort"

var builtins = map[string]func() *Theme{
	"default": Default,
	"mono":    Mono,
}

// Builtin returns a fresh copy of the named theme.
func Builtin(name string) (*Theme, bool) {
	fn, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// BuiltinNames returns the built-in theme names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
