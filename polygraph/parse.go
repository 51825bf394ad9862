package polygraph

// parseFrom performs a depth-first traversal of ag starting at node start,
// emitting one Token per edge crossed. At each frame, unvisited neighbors
// are tried in sortOrder; each failed-to-descend branch (neighbor already
// visited) still consumes its slot, so a TokenFace is emitted only for
// edges actually crossed, followed by a TokenBacktrack recording how many
// frames were popped before the next forward step resumes.
func parseFrom(ag AdjacencyGraph, start int) []Token {
	visited := make([]bool, ag.N)
	visited[start] = true

	var tokens []Token
	var walk func(node int) int
	walk = func(node int) int {
		popped := 0
		for _, f := range sortOrder {
			next, ok := ag.neighborByFace(node, f)
			if !ok || visited[next] {
				continue
			}
			if popped > 0 {
				tokens = append(tokens, Token{Kind: TokenBacktrack, Backtrack: popped})
				popped = 0
			}
			tokens = append(tokens, Token{Kind: TokenFace, Face: f})
			visited[next] = true
			popped = walk(next)
		}

		return popped + 1
	}
	walk(start)

	return tokens
}

// GetParses returns one parse per node whose identity-vector connectivity
// equals starterConn, deduplicating identical token sequences. A shape may
// have several nodes at the chosen connectivity; each is tried as a
// traversal root because the canonical choice among them is resolved by
// the Sorter's rotation-aware descent, not by this function.
func GetParses(ag AdjacencyGraph, starterConn int) [][]Token {
	identity := ag.IdentityVector()

	var parses [][]Token
	seen := make(map[string]bool)
	for i, conn := range identity {
		if conn != starterConn {
			continue
		}
		p := parseFrom(ag, i)
		key := tokenKey(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		parses = append(parses, p)
	}

	return parses
}

// tokenKey renders a token sequence into a comparable string for
// deduplication; it is not used as a trie key (Token itself is
// comparable and serves that role in sorter.go).
func tokenKey(tokens []Token) string {
	buf := make([]byte, 0, len(tokens)*3)
	for _, t := range tokens {
		buf = append(buf, byte(t.Kind))
		buf = append(buf, byte(t.Face))
		buf = append(buf, byte(t.Backtrack))
	}

	return string(buf)
}
