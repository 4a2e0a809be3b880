package sym

import "unicode"

// skipWhitespace consumes a run of Unicode whitespace.
func (p *parser) skipWhitespace() {
	for {
		r, ok := p.cur.peek()
		if !ok || !unicode.IsSpace(r) {
			return
		}

		p.cur.advance()
	}
}

// skipHorizontalWhitespace consumes spaces and tabs only, never crossing
// a newline. Used after a key to reach its value.
func (p *parser) skipHorizontalWhitespace() {
	for {
		r, ok := p.cur.peek()
		if !ok || (r != ' ' && r != '\t') {
			return
		}

		p.cur.advance()
	}
}

// skipLineComment consumes a `//` line comment up to (not including) the
// next newline, or end of input.
func (p *parser) skipLineComment() {
	p.cur.advance() // first '/'
	p.cur.advance() // second '/'

	for {
		r, ok := p.cur.peek()
		if !ok || r == '\n' {
			return
		}

		p.cur.advance()
	}
}

// skipBlockComment consumes a `/*...*/` block comment. Block comments do
// not nest. An unterminated block comment silently consumes to end of
// input rather than erroring.
func (p *parser) skipBlockComment() {
	p.cur.advance() // '/'
	p.cur.advance() // '*'

	for {
		r, ok := p.cur.advance()
		if !ok {
			return
		}

		if r == '*' && p.cur.check('/') {
			p.cur.advance()

			return
		}
	}
}

// skipTrivia repeatedly discards whitespace and both comment styles
// until none remain at the cursor. This is the "full" trivia mode used
// between structural tokens.
func (p *parser) skipTrivia() {
	for {
		p.skipWhitespace()

		switch {
		case p.cur.hasPrefix("//"):
			p.skipLineComment()
		case p.cur.hasPrefix("/*"):
			p.skipBlockComment()
		default:
			return
		}
	}
}
