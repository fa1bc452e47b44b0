// Package rdf provides the term and quadruple model persisted by tetra:
// resources (IRIs and blank nodes), literals (plain, language-tagged, and
// datatyped), immutable quadruples with content-derived identifiers, named
// graphs, and an N-Quads reader/writer for interchange.
//
// Every term carries two precomputed properties the store relies on: a
// canonical display string in N-Triples form, and a 64-bit content hash of
// that string (the member ID) used for indexed equality lookups so that
// filtering never compares raw strings. Resource and literal encodings
// cannot collide: resources always render as "<iri>" or "_:label", literals
// always start with a double quote.
package rdf

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// XSDString is the datatype IRI of plain string literals. A typed literal
// with this datatype is indistinguishable from a plain literal and is
// normalized to one at construction.
const XSDString = "http://www.w3.org/2001/XMLSchema#string"

// Flavor tags a quadruple by the kind of term in its object slot.
// Resource-object and literal-object rows share the object_id hash space,
// so every operation filtering on the object must also filter on flavor.
type Flavor int

const (
	// ResourceObject marks a quadruple whose object is a resource.
	ResourceObject Flavor = 1
	// LiteralObject marks a quadruple whose object is a literal.
	LiteralObject Flavor = 2
)

func (f Flavor) String() string {
	switch f {
	case ResourceObject:
		return "resource"
	case LiteralObject:
		return "literal"
	default:
		return fmt.Sprintf("flavor(%d)", int(f))
	}
}

// Term is an RDF term: a [Resource] or a [Literal].
type Term interface {
	fmt.Stringer

	// MemberID returns the 64-bit content hash of the term's canonical
	// string, independent of the position the term appears in.
	MemberID() int64

	// TermFlavor reports the quadruple flavor implied when the term
	// occupies the object slot.
	TermFlavor() Flavor
}

// hashTerm derives the 64-bit identifier for a canonical term string.
// Collisions are an accepted, unhandled risk.
func hashTerm(s string) int64 {
	return int64(xxhash.Sum64String(s))
}

// ============================================================================
// Resource
// ============================================================================

// Resource is an IRI or a blank node. The zero value is invalid; construct
// resources with [NewResource], [MustResource], or [NewBlankNode].
type Resource struct {
	value string // IRI, or blank node label
	blank bool
	id    int64
}

// NewResource returns a resource naming the given IRI.
func NewResource(iri string) (Resource, error) {
	if err := validateIRI(iri); err != nil {
		return Resource{}, err
	}
	r := Resource{value: iri}
	r.id = hashTerm(r.String())
	return r, nil
}

// MustResource is like [NewResource] but panics on an invalid IRI.
// Intended for fixed IRIs known at compile time.
func MustResource(iri string) Resource {
	r, err := NewResource(iri)
	if err != nil {
		panic(err)
	}
	return r
}

// NewBlankNode returns a fresh blank node with a unique label.
func NewBlankNode() Resource {
	r := Resource{value: strings.ReplaceAll(uuid.NewString(), "-", ""), blank: true}
	r.id = hashTerm(r.String())
	return r
}

// newBlankNodeLabel builds a blank node from a parsed label.
func newBlankNodeLabel(label string) (Resource, error) {
	if err := validateBlankLabel(label); err != nil {
		return Resource{}, err
	}
	r := Resource{value: label, blank: true}
	r.id = hashTerm(r.String())
	return r, nil
}

// String returns the canonical N-Triples form: "<iri>" or "_:label".
func (r Resource) String() string {
	if r.blank {
		return "_:" + r.value
	}
	return "<" + r.value + ">"
}

// IRI returns the resource's IRI, or "" for a blank node.
func (r Resource) IRI() string {
	if r.blank {
		return ""
	}
	return r.value
}

// IsBlank reports whether the resource is a blank node.
func (r Resource) IsBlank() bool { return r.blank }

// MemberID implements [Term].
func (r Resource) MemberID() int64 { return r.id }

// TermFlavor implements [Term].
func (r Resource) TermFlavor() Flavor { return ResourceObject }

// Equal reports whether two resources denote the same IRI or blank node.
func (r Resource) Equal(other Resource) bool {
	return r.blank == other.blank && r.value == other.value
}

// isZero reports whether r is the invalid zero value. Blank nodes always
// carry a non-empty label, so an empty value suffices.
func (r Resource) isZero() bool { return r.value == "" }

// validateIRI rejects the characters the N-Quads IRIREF production forbids,
// so every accepted IRI round-trips through the writer unescaped.
func validateIRI(iri string) error {
	if iri == "" {
		return fmt.Errorf("rdf: empty IRI")
	}
	for _, c := range iri {
		if c <= 0x20 || strings.ContainsRune(`<>"{}|^`+"`\\", c) {
			return fmt.Errorf("rdf: IRI %q contains forbidden character %q", iri, c)
		}
	}
	return nil
}

// validateBlankLabel accepts labels of letters, digits, '_', '-' and
// interior dots, matching what the writer emits.
func validateBlankLabel(label string) error {
	if label == "" {
		return fmt.Errorf("rdf: empty blank node label")
	}
	for i, c := range label {
		switch {
		case unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_':
		case (c == '-' || c == '.') && i > 0 && i < len(label)-1:
		default:
			return fmt.Errorf("rdf: blank node label %q contains forbidden character %q", label, c)
		}
	}
	return nil
}

// ============================================================================
// Literal
// ============================================================================

// Literal is an RDF literal: a lexical value with an optional language tag
// or datatype IRI. At most one of the two is set; a literal typed as
// xsd:string is normalized to a plain literal.
type Literal struct {
	value    string
	lang     string
	datatype string
	id       int64
}

// NewLiteral returns a plain literal. Every string is a valid value;
// escaping happens on serialization.
func NewLiteral(value string) Literal {
	l := Literal{value: value}
	l.id = hashTerm(l.String())
	return l
}

// NewLangLiteral returns a language-tagged literal. The tag is validated
// against the BCP 47-ish shape the N-Quads grammar accepts and normalized
// to lowercase.
func NewLangLiteral(value, lang string) (Literal, error) {
	if err := validateLang(lang); err != nil {
		return Literal{}, err
	}
	l := Literal{value: value, lang: strings.ToLower(lang)}
	l.id = hashTerm(l.String())
	return l, nil
}

// NewTypedLiteral returns a literal tagged with a datatype IRI.
func NewTypedLiteral(value, datatype string) (Literal, error) {
	if datatype == XSDString {
		return NewLiteral(value), nil
	}
	if err := validateIRI(datatype); err != nil {
		return Literal{}, fmt.Errorf("rdf: invalid datatype: %w", err)
	}
	l := Literal{value: value, datatype: datatype}
	l.id = hashTerm(l.String())
	return l, nil
}

// String returns the canonical N-Triples form: "value", "value"@lang, or
// "value"^^<datatype>.
func (l Literal) String() string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(escapeLiteral(l.value))
	b.WriteByte('"')
	switch {
	case l.lang != "":
		b.WriteByte('@')
		b.WriteString(l.lang)
	case l.datatype != "":
		b.WriteString("^^<")
		b.WriteString(l.datatype)
		b.WriteByte('>')
	}
	return b.String()
}

// Value returns the lexical value.
func (l Literal) Value() string { return l.value }

// Lang returns the language tag, or "" when untagged.
func (l Literal) Lang() string { return l.lang }

// Datatype returns the datatype IRI, or "" for plain and language-tagged
// literals.
func (l Literal) Datatype() string { return l.datatype }

// MemberID implements [Term].
func (l Literal) MemberID() int64 { return l.id }

// TermFlavor implements [Term].
func (l Literal) TermFlavor() Flavor { return LiteralObject }

// Equal reports whether two literals have the same value, language tag,
// and datatype.
func (l Literal) Equal(other Literal) bool {
	return l.value == other.value && l.lang == other.lang && l.datatype == other.datatype
}

func validateLang(lang string) error {
	if lang == "" {
		return fmt.Errorf("rdf: empty language tag")
	}
	for i, c := range lang {
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' || c == '-':
			if i == 0 {
				return fmt.Errorf("rdf: language tag %q must start with a letter", lang)
			}
		default:
			return fmt.Errorf("rdf: language tag %q contains forbidden character %q", lang, c)
		}
	}
	if strings.HasSuffix(lang, "-") || strings.Contains(lang, "--") {
		return fmt.Errorf("rdf: malformed language tag %q", lang)
	}
	return nil
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func escapeLiteral(s string) string {
	return literalEscaper.Replace(s)
}

// Compile-time checks that both term kinds satisfy Term.
var (
	_ Term = Resource{}
	_ Term = Literal{}
)
