package main

import (
	"fmt"
	"sort"

	"mandelfield/pkg/field"
)

// Landmark regions of the set, addressable by name from the command line so
// interesting views don't need hand-typed corner coordinates.
var regions = map[string]struct{ min, max complex128 }{
	// The whole set with a little margin.
	"overview": {min: -2.1 - 1.3i, max: 0.7 + 1.3i},

	// Dense filaments and repeating seahorse curls.
	"seahorse": {min: -0.8 + 0.05i, max: -0.7 + 0.15i},

	// The valley on the western bulb, full of elephant-trunk spirals.
	"elephant": {min: -1.85 - 0.10i, max: -1.75 - 0.02i},

	// A minibrot wrapped in a double spiral.
	"minibrot": {min: -0.7435 + 0.1310i, max: -0.7420 + 0.1325i},

	// Three spiral arms meeting near the seahorse valley.
	"triple-spiral": {min: -0.7480 + 0.0950i, max: -0.7450 + 0.0980i},

	// Filament tangle north of the main cardioid.
	"dragon": {min: -0.7400 + 0.1800i, max: -0.7350 + 0.1850i},
}

// regionParams resolves a landmark name into the corner parameters, leaving
// resolution and budget for the caller to fill in.
func regionParams(name string) (field.Params, error) {
	r, ok := regions[name]
	if !ok {
		return field.Params{}, fmt.Errorf("unknown region %q (have %v)", name, regionNames())
	}
	return field.Params{Min: r.min, Max: r.max}, nil
}

func regionNames() []string {
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
