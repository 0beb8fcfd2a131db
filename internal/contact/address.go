package contact

import (
	"github.com/dmitrymomot/domainkit"
	"github.com/dmitrymomot/domainkit/pkg/sanitizer"
)

// AddressProps are the fields of an Address. An address is identified by
// its label ("home", "office", ...).
type AddressProps struct {
	Label    *Label
	City     *City
	Postcode *Postcode
}

func (p AddressProps) Fields() domainkit.Fields {
	return domainkit.Fields{
		domainkit.ValueField("label", p.Label),
		domainkit.ValueField("city", p.City),
		domainkit.ValueField("postcode", p.Postcode),
	}
}

func (p AddressProps) Equals(other AddressProps) bool {
	if p.Label == nil || other.Label == nil {
		return p.Label == nil && other.Label == nil
	}
	return p.Label.Equals(other.Label)
}

type Address = domainkit.Entity[AddressProps]

// AddressInput is the plain form of an Address.
type AddressInput struct {
	Label    string `json:"label" yaml:"label"`
	City     string `json:"city" yaml:"city"`
	Postcode string `json:"postcode" yaml:"postcode"`
}

func (in AddressInput) props() AddressProps {
	return AddressProps{
		Label:    NewLabel(sanitizer.NormalizeWhitespace(in.Label)),
		City:     NewCity(sanitizer.NormalizeWhitespace(in.City)),
		Postcode: NewPostcode(sanitizer.NormalizePostalCode(in.Postcode)),
	}
}

// NewAddress creates a validated Address.
func NewAddress(in AddressInput) (*Address, error) {
	return domainkit.Create(in.props())
}

// RestoreAddress rebuilds an Address without validating it.
func RestoreAddress(in AddressInput) *Address {
	return domainkit.Reconstruct(in.props())
}

// newAddresses reconstructs each element; validation happens once, as part
// of the owning Person.
func newAddresses(ins []AddressInput) *domainkit.Collection[*Address] {
	items := make([]*Address, len(ins))
	for i, in := range ins {
		items[i] = RestoreAddress(in)
	}
	return domainkit.NewEntityCollection(items...)
}
