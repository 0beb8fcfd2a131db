package domainkit_test

import (
	"strings"

	"github.com/dmitrymomot/domainkit"
)

// code is a minimal leaf: it fails when empty or when it starts with
// "bad", and records every prev it is validated against.
type code struct {
	*domainkit.Base[string, string, string]
	seen []*code
}

func newCode(s string) *code {
	return &code{Base: domainkit.NewBase(s, domainkit.Pipeline[string, string, string]{})}
}

func (c *code) Compare(other *code) int {
	return strings.Compare(c.Inner(), other.Inner())
}

func (c *code) Equals(other *code) bool {
	if other == nil {
		return false
	}
	return c.Compare(other) == 0
}

func (c *code) GetErrors(name string, prev *code) []domainkit.ValidationError {
	c.seen = append(c.seen, prev)
	switch {
	case c.Inner() == "":
		return []domainkit.ValidationError{{Name: name, Message: "field is required"}}
	case strings.HasPrefix(c.Inner(), "bad"):
		return []domainkit.ValidationError{{Name: name, Message: "is bad"}}
	default:
		return nil
	}
}

func (c *code) Plain() any {
	return c.Value()
}

// lineProps is a small entity identified by sku.
type lineProps struct {
	SKU  *code
	Note *code
}

func (p lineProps) Fields() domainkit.Fields {
	return domainkit.Fields{
		domainkit.ValueField("sku", p.SKU),
		domainkit.ValueField("note", p.Note),
	}
}

func (p lineProps) Equals(other lineProps) bool {
	if p.SKU == nil || other.SKU == nil {
		return p.SKU == nil && other.SKU == nil
	}
	return p.SKU.Equals(other.SKU)
}

type line = domainkit.Entity[lineProps]

func newLine(sku, note string) *line {
	p := lineProps{SKU: newCode(sku)}
	if note != "" {
		p.Note = newCode(note)
	}
	return domainkit.Reconstruct(p)
}

// orderProps exercises every field kind.
type orderProps struct {
	Ref   *code
	Memo  *domainkit.Optional[*code]
	Main  *line
	Lines *domainkit.Collection[*line]
	Codes *domainkit.Collection[*code]
}

func (p orderProps) Fields() domainkit.Fields {
	return domainkit.Fields{
		domainkit.ValueField("ref", p.Ref),
		domainkit.ValueField("memo", p.Memo),
		domainkit.EntityField("main", p.Main),
		domainkit.CollectionField("lines", p.Lines),
		domainkit.CollectionField("codes", p.Codes),
	}
}

func (p orderProps) Equals(other orderProps) bool {
	if p.Ref == nil || other.Ref == nil {
		return p.Ref == nil && other.Ref == nil
	}
	return p.Ref.Equals(other.Ref)
}

func codes(values ...string) *domainkit.Collection[*code] {
	items := make([]*code, len(values))
	for i, v := range values {
		items[i] = newCode(v)
	}
	return domainkit.NewCollection(items...)
}

func validOrder() orderProps {
	return orderProps{
		Ref:   newCode("o-1"),
		Memo:  domainkit.None[*code](),
		Main:  newLine("main", ""),
		Lines: domainkit.NewEntityCollection(newLine("a", ""), newLine("b", "gift")),
		Codes: codes("x", "y"),
	}
}
