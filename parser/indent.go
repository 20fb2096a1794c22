package parser

// parseIndentBlock parses entries subordinate to a controlling token, the
// last non-whitespace character before the cursor. If the next content sits
// on the controlling token's own line, exactly one entry is parsed (inline
// mode). Otherwise entries are collected from every following line indented
// strictly deeper than the controlling token's line (block mode).
func (k *Kind) parseIndentBlock(s *Scanner) Element {
	ctrlLine, found := s.controllingLine()
	if !found {
		return nil
	}
	ctrlIndent := s.lineIndents[ctrlLine]

	next := s.skipFrom(s.cursor)
	if next >= len(s.src) {
		return nil
	}

	if s.lineAt(next) == ctrlLine {
		// inline mode
		return k.parseBase(s)
	}

	if s.lineIndents[s.lineAt(next)] <= ctrlIndent {
		return nil
	}

	startCursor := s.cursor
	var children []Element
	for {
		next = s.skipFrom(s.cursor)
		if next >= len(s.src) || s.lineIndents[s.lineAt(next)] <= ctrlIndent {
			break
		}
		el := k.parseBase(s)
		entry, isNode := el.(*Node)
		if !isNode {
			if el != nil {
				children = append(children, el)
				continue
			}
			break
		}
		children = append(children, entry.Exps...)
	}
	if len(children) == 0 {
		s.cursor = startCursor
		return nil
	}
	return &Node{Kind: k, Exps: children}
}

// controllingLine identifies the line of the last non-whitespace character
// before the cursor. The cursor is untouched.
func (s *Scanner) controllingLine() (int, bool) {
	s.PushCursor()
	defer s.PopCursor()
	i := s.cursor - 1
	for i >= 0 && isSkippable(s.src[i]) {
		i--
	}
	if i < 0 {
		return 0, false
	}
	return s.lineAt(i), true
}
