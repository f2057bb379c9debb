package madafsa

// registry interns states by structural equivalence. It holds references
// only (pool indices); it never owns the states it names, and it is
// emptied once a build finishes -- its entries have no meaning once the
// automaton is frozen, since no further minimization will happen.
type registry struct {
	buckets map[uint64][]int

	// collisions counts how many times find() had to fall back to a full
	// equivalentTo check against a candidate that turned out NOT to be
	// equivalent: i.e. a genuine hash collision, as opposed to a hash hit
	// that was also a real match. Exposed via Automaton.BuildCollisions.
	collisions int
}

func newRegistry() *registry {
	return &registry{buckets: make(map[uint64][]int)}
}

func (r *registry) clear() {
	r.buckets = make(map[uint64][]int)
	r.collisions = 0
}

// find returns the canonical state equivalent to candidate, if one has
// already been interned.
func (r *registry) find(pool *statePool, candidate int, words []string) (int, bool) {
	cs := pool.get(candidate)
	h := cs.hash(words)
	bucket := r.buckets[h]
	for _, other := range bucket {
		if other == candidate {
			continue
		}
		if cs.equivalentTo(pool.get(other), words) {
			return other, true
		}
		r.collisions++
	}
	return noState, false
}

// insert adds candidate to the registry as a new canonical representative.
func (r *registry) insert(pool *statePool, candidate int, words []string) {
	h := pool.get(candidate).hash(words)
	r.buckets[h] = append(r.buckets[h], candidate)
}
