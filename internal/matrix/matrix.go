// Package matrix enumerates the feature configurations to verify. Given a
// project's ordered feature list it produces every cargo-style feature
// selection: --all-features, --no-default-features, and each non-empty
// explicit subset. The enumeration is exhaustive on purpose; feature counts
// are small, human-curated lists, so 2^N stays manageable.
package matrix

import (
	"math/bits"
	"strings"
)

// Kind discriminates the three configuration variants.
type Kind int

const (
	// AllFeatures enables every feature through the tool's single flag.
	AllFeatures Kind = iota
	// NoDefaultFeatures disables default features and enables none.
	NoDefaultFeatures
	// ExplicitSubset disables default features and enables a named subset.
	ExplicitSubset
)

// Config is one feature selection under which the project is verified.
// Configs are immutable values with no identity beyond their content.
type Config struct {
	Kind     Kind
	Features []string // non-empty iff Kind is ExplicitSubset, in feature-list order
}

// Flags renders the feature-selection arguments for the external tool.
func (c Config) Flags() []string {
	switch c.Kind {
	case AllFeatures:
		return []string{"--all-features"}
	case NoDefaultFeatures:
		return []string{"--no-default-features"}
	default:
		return []string{"--no-default-features", "--features", strings.Join(c.Features, ",")}
	}
}

// String renders the flags as a single line, as shown in progress output.
func (c Config) String() string {
	return strings.Join(c.Flags(), " ")
}

// Enumerate produces the ordered configuration list for the given feature
// names: the two sentinels first, then every non-empty subset. Subsets come
// from counting a bitmask from 1 to 2^N-1 where bit i selects features[i],
// so the order is deterministic for a given input order and the result has
// exactly 2 + (2^N - 1) entries. N=0 yields just the sentinels.
func Enumerate(features []string) []Config {
	n := uint(len(features))
	configs := make([]Config, 0, 2+(uint64(1)<<n)-1)
	configs = append(configs,
		Config{Kind: AllFeatures},
		Config{Kind: NoDefaultFeatures},
	)
	for mask := uint64(1); mask < uint64(1)<<n; mask++ {
		subset := make([]string, 0, bits.OnesCount64(mask))
		for i := uint(0); i < n; i++ {
			if mask&(uint64(1)<<i) != 0 {
				subset = append(subset, features[i])
			}
		}
		configs = append(configs, Config{Kind: ExplicitSubset, Features: subset})
	}
	return configs
}
