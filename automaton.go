package madafsa

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// StateID names a state reached by a query. It is only meaningful against
// the Automaton that produced it; it becomes invalid after Clear or a
// subsequent BuildFromWordList.
type StateID int

// chainLink is one edge of the still-uninterned spine: the path from root
// down to the deepest state touched so far that has not yet been tested
// for equivalence against the registry. It plays the same role as an
// "unchecked nodes" list in the classic incremental construction: states
// are appended to it in step (c) and popped off, bottom-up, in minimize.
type chainLink struct {
	parent int
	ch     byte
	child  int
}

// Automaton is a minimal acyclic DFA over a fixed lexicon of byte strings.
// It exclusively owns its word list, state pool, and interning registry;
// nothing inside it outlives the Automaton itself. BuildFromWordList and
// Clear require exclusive access; once BuildFromWordList returns,
// FindState and SuffixesForPrefix are safe to call concurrently without
// locking.
type Automaton struct {
	words []string
	pool  statePool
	reg   *registry
	chain []chainLink

	building        bool
	finished        bool
	totalSymbols    int
	buildCollisions int
}

// New returns an empty Automaton, ready for BuildFromWordList.
func New() *Automaton {
	a := &Automaton{reg: newRegistry()}
	return a
}

// BuildFromWordList sorts and deduplicates words, then constructs the
// minimized automaton from the result. It is not reentrant and must not be
// called concurrently with itself, Clear, or a query on the same
// Automaton. Empty strings are honored as the empty word: if present, the
// root state is marked final (see SuffixesForPrefix("")).
func (a *Automaton) BuildFromWordList(words []string) error {
	if a.building {
		return ErrAlreadyBuilding
	}
	a.building = true
	defer func() { a.building = false }()

	a.Clear()

	ws := append([]string(nil), words...)
	slices.Sort(ws)
	ws = slices.Compact(ws)
	a.words = ws

	rootIdx := a.pool.allocate()
	assert(rootIdx == rootState, "root must be allocated at pool index 0, got %d", rootIdx)

	for i, w := range ws {
		if w == "" {
			a.pool.get(rootState).markFinal()
			continue
		}
		a.totalSymbols += len(w)
		a.insertWord(i, w)
	}

	a.minimize(0)
	// The root is never on the chain, so minimize never hashes it; compute
	// its hash here so that no memoized hash is left dirty after the build.
	a.pool.get(rootState).hash(a.words)
	a.buildCollisions = a.reg.collisions
	a.reg.clear()
	a.finished = true

	tracer().Infof("build complete: words=%d states=%d collisions=%d",
		len(a.words), a.pool.live, a.buildCollisions)

	return nil
}

// insertWord runs steps (a)-(c) of the incremental construction for the
// word at index i.
func (a *Automaton) insertWord(i int, w string) {
	// (a) Walk the common prefix, annotating every state visited
	// (including the root) with the word's continuation from that point.
	node := rootState
	pos := 0
	for {
		s := a.pool.get(node)
		s.appendAnnotation(i, pos)
		if pos == len(w) {
			// w is a prefix of a previously inserted word.
			s.markFinal()
			break
		}
		child, ok := s.findChild(w[pos])
		if !ok {
			break
		}
		node = child
		pos++
	}
	divergenceOffset := pos

	// (b) Minimize whatever tail of the previous word hangs below the
	// point where this word diverges from it.
	a.minimize(divergenceOffset)

	// (c) Create fresh states for this word's remaining suffix, if any.
	if divergenceOffset == len(w) {
		return
	}
	for pos := divergenceOffset; pos < len(w); pos++ {
		parent := a.pool.get(node)
		child := a.pool.allocate()
		// allocate may have grown the pool's backing slice, invalidating
		// parent; re-fetch before using it.
		parent = a.pool.get(node)
		cs := a.pool.get(child)
		cs.initAnnotationFromParent(parent, a.words, w[pos])
		parent.addChild(w[pos], child)
		a.chain = append(a.chain, chainLink{parent: node, ch: w[pos], child: child})
		node = child
	}
	a.pool.get(node).markFinal()
}

// minimize processes the chain bottom-up from its last link down to (and
// including) index downTo, then truncates the chain to its first downTo
// links: for each processed link's child state, it looks the state up in the registry; an
// equivalent canonical state causes the parent's edge to be rewritten and
// the state retired, otherwise the state itself becomes canonical.
// Processing bottom-up is essential, since a state's hash depends on its
// children's identities, which must already be settled.
func (a *Automaton) minimize(downTo int) {
	for i := len(a.chain) - 1; i >= downTo; i-- {
		link := a.chain[i]
		if canon, ok := a.reg.find(&a.pool, link.child, a.words); ok {
			a.pool.get(link.parent).replaceChild(link.ch, canon)
			a.pool.retire(link.child)
		} else {
			a.reg.insert(&a.pool, link.child, a.words)
		}
	}
	a.chain = a.chain[:downTo]
}

// Clear resets the automaton to empty, ready for another build.
func (a *Automaton) Clear() {
	a.words = nil
	a.pool.reset()
	a.reg = newRegistry()
	a.chain = a.chain[:0]
	a.finished = false
	a.totalSymbols = 0
	a.buildCollisions = 0
}

// Word returns the i-th retained word (post sort-and-dedup).
func (a *Automaton) Word(i int) (string, error) {
	if !a.finished {
		return "", ErrNotBuilt
	}
	if i < 0 || i >= len(a.words) {
		return "", ErrWordIndexRange
	}
	return a.words[i], nil
}

// FindState walks from the root consuming prefix, returning the state it
// lands on, or false if prefix has no matching transition. It returns false
// for every prefix, including "", on an automaton that has not been built
// yet: there is no root to land on.
func (a *Automaton) FindState(prefix string) (StateID, bool) {
	if !a.finished {
		return StateID(noState), false
	}
	node := rootState
	for i := 0; i < len(prefix); i++ {
		s := a.pool.get(node)
		child, ok := s.findChild(prefix[i])
		if !ok {
			return StateID(noState), false
		}
		node = child
	}
	return StateID(node), true
}

// SuffixesForPrefix returns the set of completions of prefix present in
// the lexicon: the strings s such that prefix+s was built into the
// automaton. It returns false if prefix is not recognized at all (no
// walk from root consumes it), true with a possibly-empty set otherwise.
func (a *Automaton) SuffixesForPrefix(prefix string) ([]string, bool) {
	id, ok := a.FindState(prefix)
	if !ok {
		return nil, false
	}
	s := a.pool.get(int(id))
	out := s.materializeRightLanguage(a.words)
	if s.isFinalState() {
		out = append(out, "")
	}
	return out, true
}

// NumberOfStates returns the number of live (non-retired) states,
// including the root.
func (a *Automaton) NumberOfStates() int {
	return a.pool.live
}

// NumberOfWords returns the number of distinct words retained after
// sort-and-dedup.
func (a *Automaton) NumberOfWords() int {
	return len(a.words)
}

// NumberOfTotalSymbols returns the sum of the byte-lengths of every
// retained word.
func (a *Automaton) NumberOfTotalSymbols() int {
	return a.totalSymbols
}

// BuildCollisions returns the number of registry hash collisions resolved
// by a full equality check during the most recent build.
func (a *Automaton) BuildCollisions() int {
	return a.buildCollisions
}

// Verify performs a deep audit of the structural invariants:
// acyclicity, determinism, minimality, and recognition completeness and
// soundness. It is expensive (quadratic in live state count) and is meant
// to run in tests and fuzzers, not in a release build's hot path.
func (a *Automaton) Verify() bool {
	if !a.finished {
		return false
	}

	visited := make(map[int]bool)
	onStack := make(map[int]bool)
	var reachable []int

	var dfs func(int) bool
	dfs = func(idx int) bool {
		if onStack[idx] {
			return false // cycle
		}
		if visited[idx] {
			return true
		}
		visited[idx] = true
		onStack[idx] = true
		s := a.pool.get(idx)
		var lastByte int = -1
		for _, t := range s.transitions {
			if int(t.ch) <= lastByte {
				return false // not in byte order, or duplicate byte
			}
			lastByte = int(t.ch)
			if !dfs(t.to) {
				return false
			}
		}
		onStack[idx] = false
		reachable = append(reachable, idx)
		return true
	}
	if !dfs(rootState) {
		return false
	}

	for i := 0; i < len(reachable); i++ {
		si := a.pool.get(reachable[i])
		hi := si.hash(a.words)
		for j := i + 1; j < len(reachable); j++ {
			sj := a.pool.get(reachable[j])
			if hi == sj.hash(a.words) && si.equivalentTo(sj, a.words) {
				return false // minimality violated
			}
		}
	}

	lexicon := make(map[string]bool, len(a.words))
	for _, w := range a.words {
		lexicon[w] = true
	}
	for _, w := range a.words {
		id, ok := a.FindState(w)
		if !ok || !a.pool.get(int(id)).isFinalState() {
			return false // recognition completeness violated
		}
	}

	var sound func(idx int, prefix []byte) bool
	sound = func(idx int, prefix []byte) bool {
		s := a.pool.get(idx)
		if s.isFinalState() && !lexicon[string(prefix)] {
			return false // recognition soundness violated
		}
		for _, t := range s.transitions {
			if !sound(t.to, append(prefix, t.ch)) {
				return false
			}
		}
		return true
	}
	return sound(rootState, nil)
}

// GraphDumper receives a DFS-ordered edge stream from Dump. The automaton
// calls AddEdge once per transition, in depth-first order from the root;
// it is the dumper's job to deduplicate repeat edges (the same state can
// be visited through more than one path) and to handle any file I/O.
// Dump has no return value: failure to emit a graph is not the core's
// concern and is silently ignored by design.
type GraphDumper interface {
	Start()
	AddEdge(fromLabel, toLabel, edgeLabel string)
	Done()
}

// Dump walks the automaton depth-first from the root and feeds d with one
// AddEdge call per transition. Labels are opaque strings derived from each
// state's hash and finality, not from any particular state numbering.
func (a *Automaton) Dump(d GraphDumper) {
	d.Start()
	visited := make(map[int]bool)
	label := func(idx int) string {
		s := a.pool.get(idx)
		final := 0
		if s.isFinalState() {
			final = 1
		}
		return fmt.Sprintf("%016x-%d", s.hash(a.words), final)
	}
	var walk func(int)
	walk = func(idx int) {
		if visited[idx] {
			return
		}
		visited[idx] = true
		s := a.pool.get(idx)
		from := label(idx)
		for _, t := range s.transitions {
			d.AddEdge(from, label(t.to), string(t.ch))
			walk(t.to)
		}
	}
	walk(rootState)
	d.Done()
}
