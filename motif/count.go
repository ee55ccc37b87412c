package motif

import "github.com/BiocomputeLab/mctools/core"

// Count returns the number of topologically distinct instances of m in
// host: validated matcher mappings divided by the motif's automorphism
// count. Zero (nil error) when the motif does not occur.
func Count(host, m *core.Graph) (int, error) {
	set, err := matchValidated(host, m)
	if err != nil {
		return 0, err
	}

	return set.uniqueInstances()
}
