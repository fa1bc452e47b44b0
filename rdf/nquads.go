package rdf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxLineBytes bounds a single N-Quads line; literals larger than this are
// rejected rather than silently truncated.
const maxLineBytes = 1 << 20

// Reader parses line-oriented N-Quads. Lines hold three terms (a triple) or
// four (a quad), terminated by '.'. Comment lines starting with '#' and
// blank lines are skipped. Triple lines take the reader's default context;
// reading a triple line with a zero default context is an error.
type Reader struct {
	sc             *bufio.Scanner
	line           int
	defaultContext Resource
}

// NewReader returns a reader over r. defaultContext may be the zero
// Resource when the input is known to carry an explicit context on every
// line.
func NewReader(r io.Reader, defaultContext Resource) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Reader{sc: sc, defaultContext: defaultContext}
}

// ReadQuad returns the next statement, or io.EOF when the input is
// exhausted. Parse errors carry the 1-based line number.
func (r *Reader) ReadQuad() (*Quad, error) {
	for r.sc.Scan() {
		r.line++
		line := strings.TrimSpace(r.sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		q, err := r.parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("rdf: line %d: %w", r.line, err)
		}
		return q, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, fmt.Errorf("rdf: line %d: %w", r.line, err)
	}
	return nil, io.EOF
}

// ReadAll reads statements until EOF.
func (r *Reader) ReadAll() ([]*Quad, error) {
	var quads []*Quad
	for {
		q, err := r.ReadQuad()
		if err == io.EOF {
			return quads, nil
		}
		if err != nil {
			return nil, err
		}
		quads = append(quads, q)
	}
}

func (r *Reader) parseLine(line string) (*Quad, error) {
	var terms []Term
	pos := 0
	for len(terms) < 4 {
		pos = skipSpace(line, pos)
		if pos >= len(line) || line[pos] == '.' {
			break
		}
		tok, next, err := scanTermToken(line, pos)
		if err != nil {
			return nil, err
		}
		term, err := ParseTerm(tok)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
		pos = next
	}
	pos = skipSpace(line, pos)
	if pos >= len(line) || line[pos] != '.' {
		return nil, fmt.Errorf("statement is not terminated by %q", ".")
	}
	if rest := strings.TrimSpace(line[pos+1:]); rest != "" && !strings.HasPrefix(rest, "#") {
		return nil, fmt.Errorf("unexpected trailing content %q", rest)
	}
	if len(terms) < 3 {
		return nil, fmt.Errorf("statement has %d terms, want 3 or 4", len(terms))
	}

	subject, ok := terms[0].(Resource)
	if !ok {
		return nil, fmt.Errorf("subject %s must be an IRI or a blank node", terms[0])
	}
	predicate, ok := terms[1].(Resource)
	if !ok {
		return nil, fmt.Errorf("predicate %s must be an IRI", terms[1])
	}

	context := r.defaultContext
	if len(terms) == 4 {
		context, ok = terms[3].(Resource)
		if !ok {
			return nil, fmt.Errorf("context %s must be an IRI or a blank node", terms[3])
		}
	} else if context.isZero() {
		return nil, fmt.Errorf("triple line requires a default context")
	}

	return NewQuad(context, subject, predicate, terms[2])
}

func skipSpace(s string, pos int) int {
	for pos < len(s) && (s[pos] == ' ' || s[pos] == '\t') {
		pos++
	}
	return pos
}

// scanTermToken extracts the raw token starting at pos: an IRI reference, a
// blank node label, or a literal with its optional language/datatype suffix.
func scanTermToken(s string, pos int) (string, int, error) {
	switch s[pos] {
	case '<':
		end := strings.IndexByte(s[pos:], '>')
		if end < 0 {
			return "", 0, fmt.Errorf("unterminated IRI at offset %d", pos)
		}
		return s[pos : pos+end+1], pos + end + 1, nil
	case '"':
		i := pos + 1
		for i < len(s) {
			switch s[i] {
			case '\\':
				i += 2
				continue
			case '"':
				// Absorb the @lang or ^^<datatype> suffix; IRIs and
				// language tags cannot contain whitespace.
				i++
				for i < len(s) && s[i] != ' ' && s[i] != '\t' {
					i++
				}
				return trimTerminator(s, pos, i)
			}
			i++
		}
		return "", 0, fmt.Errorf("unterminated literal at offset %d", pos)
	case '_':
		i := pos
		for i < len(s) && s[i] != ' ' && s[i] != '\t' {
			i++
		}
		return trimTerminator(s, pos, i)
	default:
		return "", 0, fmt.Errorf("unexpected character %q at offset %d", s[pos], pos)
	}
}

// trimTerminator backs off a statement terminator '.' glued to the end of a
// token, as in `<s> <p> "v".` where no space precedes the dot.
func trimTerminator(s string, pos, end int) (string, int, error) {
	if end > pos && s[end-1] == '.' {
		end--
	}
	return s[pos:end], end, nil
}

// ParseTerm parses one canonical term: "<iri>", "_:label", or a quoted
// literal with an optional @lang or ^^<datatype> suffix. It is the inverse
// of [Term.String] and is what the store uses to rehydrate rows.
func ParseTerm(s string) (Term, error) {
	if s == "" {
		return nil, fmt.Errorf("rdf: empty term")
	}
	switch s[0] {
	case '<':
		if !strings.HasSuffix(s, ">") {
			return nil, fmt.Errorf("rdf: malformed IRI %q", s)
		}
		return NewResource(s[1 : len(s)-1])
	case '_':
		if !strings.HasPrefix(s, "_:") {
			return nil, fmt.Errorf("rdf: malformed blank node %q", s)
		}
		return newBlankNodeLabel(s[2:])
	case '"':
		return parseLiteral(s)
	default:
		return nil, fmt.Errorf("rdf: unrecognized term %q", s)
	}
}

func parseLiteral(s string) (Term, error) {
	end := -1
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			end = i
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return nil, fmt.Errorf("rdf: unterminated literal %q", s)
	}

	value, err := unescapeLiteral(s[1:end])
	if err != nil {
		return nil, err
	}

	rest := s[end+1:]
	switch {
	case rest == "":
		return NewLiteral(value), nil
	case strings.HasPrefix(rest, "@"):
		return NewLangLiteral(value, rest[1:])
	case strings.HasPrefix(rest, "^^<") && strings.HasSuffix(rest, ">"):
		return NewTypedLiteral(value, rest[3:len(rest)-1])
	default:
		return nil, fmt.Errorf("rdf: malformed literal suffix %q", rest)
	}
}

// unescapeLiteral reverses the N-Quads string escapes: the single-character
// ECHAR forms plus \uXXXX and \UXXXXXXXX.
func unescapeLiteral(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("rdf: trailing backslash in literal")
		}
		switch s[i] {
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 'f':
			b.WriteByte('\f')
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		case '\\':
			b.WriteByte('\\')
		case 'u', 'U':
			width := 4
			if s[i] == 'U' {
				width = 8
			}
			if i+width >= len(s) {
				return "", fmt.Errorf("rdf: truncated \\%c escape", s[i])
			}
			code, err := strconv.ParseUint(s[i+1:i+1+width], 16, 32)
			if err != nil || !utf8.ValidRune(rune(code)) {
				return "", fmt.Errorf("rdf: invalid \\%c escape %q", s[i], s[i+1:i+1+width])
			}
			b.WriteRune(rune(code))
			i += width
		default:
			return "", fmt.Errorf("rdf: unknown escape \\%c", s[i])
		}
	}
	return b.String(), nil
}

// Writer emits statements as canonical N-Quads lines.
type Writer struct {
	w io.Writer
}

// NewWriter returns a writer targeting w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteQuad writes one statement followed by a newline.
func (w *Writer) WriteQuad(q *Quad) error {
	if q == nil {
		return fmt.Errorf("rdf: cannot write a nil quad")
	}
	if _, err := fmt.Fprintln(w.w, q); err != nil {
		return fmt.Errorf("rdf: write quad: %w", err)
	}
	return nil
}
