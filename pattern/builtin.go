package pattern

import (
	"fmt"
	"sort"
	"strings"
)

// builtins holds well-known patterns in RLE.
var builtins = map[string]string{
	"block":       "x = 2, y = 2\n2o$2o!",
	"blinker":     "x = 3, y = 1\n3o!",
	"glider":      "x = 3, y = 3\nbo$2bo$3o!",
	"lwss":        "x = 5, y = 4\nbo2bo$o4b$o3bo$4o!",
	"r-pentomino": "x = 3, y = 3\nb2o$2ob$bo!",
	"acorn":       "x = 7, y = 3\nbo5b$3bo3b$2o2b3o!",
	"diehard":     "x = 8, y = 3\n6bob$2o6b$bo3b3o!",
	"gosper-gun": "x = 36, y = 9, rule = B3/S23\n" +
		"24bo$22bobo$12b2o6b2o12b2o$11bo3bo4b2o12b2o$2o8bo5bo3b2o$" +
		"2o8bo3bob2o4bobo$10bo5bo7bo$11bo3bo$12b2o!",
}

// Builtin returns a fresh copy of the named well-known pattern.
func Builtin(name string) (*Pattern, error) {
	src, ok := builtins[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	p, err := ParseRLE(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("builtin %s: %w", name, err)
	}
	p.Name = strings.ToLower(name)
	return p, nil
}

// BuiltinNames lists the available builtin patterns in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
