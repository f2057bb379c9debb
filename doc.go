/*
Package madafsa builds a minimal acyclic deterministic finite-state
automaton (a MA-DAFSA, also known as a DAWG) from a sorted lexicon of
byte strings, and answers prefix-to-completions queries against it.

The automaton is constructed incrementally using the algorithm of
Daciuk, Mihov, Watson, and Watson: words are fed in ascending order,
and every state whose subtree can no longer change is interned into a
registry keyed by structural equivalence, so that two states with the
same outgoing transitions and the same completions collapse into one.

Unlike a plain DAWG that only answers membership and rank queries,
each state here additionally carries a right-language annotation -- a
set of (word index, offset) pairs recording which lexicon entries
continue from that state -- so that every prefix can be expanded back
into its full set of completions without rescanning the lexicon.

To use it, call New, then BuildFromWordList with the lexicon (it sorts
and deduplicates for you), and query with SuffixesForPrefix. The
automaton is immutable after BuildFromWordList returns, until Clear is
called to reset it for another build.

Building is not safe for concurrent use; once BuildFromWordList
returns, concurrent readers may call FindState and SuffixesForPrefix
freely.
*/
package madafsa
