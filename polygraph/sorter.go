package polygraph

import "fmt"

// sorterNode is one frame of the radix trie. children is keyed directly by
// Token since Token is comparable; leaf marks a node where some previously
// inserted parse ended.
type sorterNode struct {
	children map[Token]*sorterNode
	leaf     bool
}

func newSorterNode() *sorterNode {
	return &sorterNode{children: make(map[Token]*sorterNode)}
}

// Sorter deduplicates shapes of a single fixed size by descending a radix
// trie of DFS parse signatures, without ever enumerating 24 rotations: the
// first shape seen fixes the trie's face labeling, and every later shape
// is checked against it through a rotation-aware equivalence mapping built
// incrementally as the descent proceeds.
type Sorter struct {
	root                *sorterNode
	starterConnectivity int
	started             bool
}

// NewSorter returns an empty Sorter.
func NewSorter() *Sorter {
	return &Sorter{root: newSorterNode()}
}

// chooseStarter picks the starter connectivity once, from the first shape
// ever presented to the Sorter: the connectivity value that occurs least
// often among that shape's nodes (rarest first minimizes branching in the
// parse), ties in count broken by the smallest connectivity value.
func chooseStarter(identity []int) int {
	counts := make(map[int]int, len(identity))
	for _, c := range identity {
		counts[c]++
	}

	best := identity[0]
	for _, c := range identity[1:] {
		if counts[c] < counts[best] || (counts[c] == counts[best] && c < best) {
			best = c
		}
	}

	return best
}

// TryAdd attempts to insert ag into the Sorter. It returns true if ag was
// not already represented (a new shape, now recorded) and false if an
// equivalent shape (under rotation) was already present.
func (s *Sorter) TryAdd(ag AdjacencyGraph) bool {
	identity := ag.IdentityVector()
	if !s.started {
		s.starterConnectivity = chooseStarter(identity)
		s.started = true
	}

	parses := GetParses(ag, s.starterConnectivity)
	if len(parses) == 0 {
		panic("polygraph: no node found at the Sorter's starter connectivity")
	}

	for _, p := range parses {
		if s.matches(p) {
			return false
		}
	}

	s.insert(parses[0])

	return true
}

// matches reports whether tokens already has a rotation-equivalent
// representative in the trie.
func (s *Sorter) matches(tokens []Token) bool {
	var equiv [6]Face
	var established [6]bool
	_, ok := descend(s.root, tokens, 0, equiv, established)

	return ok
}

// descend walks the trie against tokens[idx:], extending the face
// equivalence mapping (passed by value, not via an undo stack — the
// 6-slot arrays are cheap enough to copy at every branch) as TokenFace
// entries are matched. It returns the node landed on and whether every
// token was consumed at a valid (leaf) destination.
func descend(node *sorterNode, tokens []Token, idx int, equiv [6]Face, established [6]bool) (*sorterNode, bool) {
	if idx == len(tokens) {
		if node.leaf && len(node.children) == 0 {
			return node, true
		}
		if node.leaf {
			// A previously-inserted parse ended here, but this node still
			// branches further: only possible if one parse were a strict
			// prefix of another. Every parse of an n-cell shape holds
			// exactly n-1 face tokens and never ends in a backtrack
			// token, so this cannot happen for shapes of one size.
			panic("polygraph: invariant violation: leaf node has children")
		}

		return node, false
	}

	tok := tokens[idx]
	if tok.Kind == TokenBacktrack {
		child, ok := node.children[tok]
		if !ok {
			return node, false
		}

		return descend(child, tokens, idx+1, equiv, established)
	}

	for childTok, child := range node.children {
		if childTok.Kind != TokenFace {
			continue
		}
		newEquiv, newEstablished, ok := extendEquivalence(equiv, established, childTok.Face, tok.Face)
		if !ok {
			continue
		}
		if landed, done := descend(child, tokens, idx+1, newEquiv, newEstablished); done {
			return landed, true
		}
	}

	return node, false
}

// extendEquivalence attempts to record that canonical face c corresponds
// to query face q, preserving the constraints any rotation must satisfy:
// the mapping is injective, and opposite(e(f)) == e(opposite(f)) for
// every established pair. It returns the (possibly unchanged) state and
// whether c -> q is consistent with it.
func extendEquivalence(equiv [6]Face, established [6]bool, c, q Face) ([6]Face, [6]bool, bool) {
	ci := faceIndex(c)
	if established[ci] {
		return equiv, established, equiv[ci] == q
	}
	for i, isSet := range established {
		if isSet && equiv[i] == q && i != ci {
			return equiv, established, false // q already claimed by a different canonical face
		}
	}

	oc := Opposite(c)
	oci := faceIndex(oc)
	oq := Opposite(q)
	if established[oci] && equiv[oci] != oq {
		return equiv, established, false
	}

	equiv[ci] = q
	established[ci] = true
	equiv[oci] = oq
	established[oci] = true

	return equiv, established, true
}

// insert adds tokens as a new path in the trie, in the frame of reference
// of whichever shape is currently being inserted (the first shape a
// Sorter sees fixes the trie's canonical face labeling).
func (s *Sorter) insert(tokens []Token) {
	node := s.root
	for _, t := range tokens {
		child, ok := node.children[t]
		if !ok {
			child = newSorterNode()
			node.children[t] = child
		}
		node = child
	}
	if len(node.children) > 0 {
		panic(fmt.Sprintf("polygraph: invariant violation: inserting parse of length %d into a non-leaf node", len(tokens)))
	}
	node.leaf = true
}
