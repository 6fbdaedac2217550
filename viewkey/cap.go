package viewkey

// MaxCombinations is the largest number of subsets a single tag group may
// contribute with full power-set enumeration.
const MaxCombinations = 256

// Strategy is the enumeration strategy for the subsets of a tag group.
type Strategy uint8

const (
	PowerSet   Strategy = iota // every subset, exact coverage
	Singletons                 // empty subset and singletons only
)

func (s Strategy) String() string {
	if s == Singletons {
		return "singletons"
	}
	return "power-set"
}

// CapPolicy decides how the subsets of a tag group are enumerated. The
// decision depends on the number of tags only, never on data, so clients
// may predict key counts before touching any data.
type CapPolicy struct {
	max int
}

// DefaultCap is the policy every enumeration uses. Its limit is not
// configurable.
var DefaultCap = CapPolicy{max: MaxCombinations}

// Limit returns the maximum number of power-set subsets.
func (p CapPolicy) Limit() int {
	return p.max
}

// Strategy returns the enumeration strategy for a group of n tags.
func (p CapPolicy) Strategy(n int) Strategy {
	if n < 31 && 1<<uint(n) <= p.max {
		return PowerSet
	}
	return Singletons
}

// KeyCount returns the number of subsets enumerated for a group of n tags.
func (p CapPolicy) KeyCount(n int) int {
	if p.Strategy(n) == PowerSet {
		return 1 << uint(n)
	}
	return n + 1
}

// Subsets enumerates the subsets of tags according to the policy. Tags are
// expected to be sorted and distinct. The empty subset comes first, followed
// by subsets of increasing size; subsets of equal size are in lexicographic
// order of their tag positions.
func (p CapPolicy) Subsets(tags []string) [][]string {
	n := len(tags)
	maxSize := n
	if p.Strategy(n) == Singletons {
		maxSize = 1
	}
	subsets := make([][]string, 0, p.KeyCount(n))
	for k := 0; k <= maxSize; k++ {
		combinations(n, k, func(ix []int) {
			s := make([]string, k)
			for i, j := range ix {
				s[i] = tags[j]
			}
			subsets = append(subsets, s)
		})
	}
	return subsets
}

// combinations calls f for every k-combination of {0…n-1}, in lexicographic
// order. The slice passed to f is re-used between calls.
func combinations(n, k int, f func([]int)) {
	if k > n {
		return
	}
	ix := make([]int, k)
	for i := range ix {
		ix[i] = i
	}
	for {
		f(ix)
		i := k - 1
		for i >= 0 && ix[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		ix[i]++
		for j := i + 1; j < k; j++ {
			ix[j] = ix[j-1] + 1
		}
	}
}
