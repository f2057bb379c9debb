package madafsa

// noState is the sentinel index meaning "no such state". The root always
// lives at index 0, so 0 cannot double as the sentinel; -1 is used
// instead.
const noState = -1

const rootState = 0

// statePool owns every state object for the lifetime of an Automaton. It
// is an append-only backing store plus a free list of retired slots, so
// that state references (plain indices into states) remain stable across
// retirement and reuse: nothing is ever moved, and nothing is ever handed
// back to the caller except an index.
type statePool struct {
	states   []state
	freeList []int
	live     int
}

// reset discards all states and returns the pool to its zero value.
func (p *statePool) reset() {
	p.states = p.states[:0]
	p.freeList = p.freeList[:0]
	p.live = 0
}

// allocate returns a reused retired state if the free list is nonempty,
// otherwise appends a fresh zero-initialized state.
func (p *statePool) allocate() int {
	p.live++
	if n := len(p.freeList); n > 0 {
		idx := p.freeList[n-1]
		p.freeList = p.freeList[:n-1]
		return idx
	}
	p.states = append(p.states, state{})
	return len(p.states) - 1
}

// retire clears s and pushes it onto the free list. The caller is
// responsible for ensuring no remaining reference to idx survives; the
// pool itself has no way to know who else is pointing at it.
func (p *statePool) retire(idx int) {
	p.states[idx] = state{}
	p.freeList = append(p.freeList, idx)
	p.live--
}

// get returns a pointer to the state at idx. The pointer is valid until
// the next call that might grow p.states (allocate); callers that hold
// onto a *state across an allocate call must re-fetch it.
func (p *statePool) get(idx int) *state {
	return &p.states[idx]
}
