package contact

import (
	"github.com/dmitrymomot/domainkit"
	"github.com/dmitrymomot/domainkit/pkg/sanitizer"
)

// PersonProps are the fields of a Person. Nil pointers are unset optional
// fields. A person is identified by its id.
type PersonProps struct {
	ID        *PersonID
	Name      *PersonName
	Nickname  *Nickname
	Email     *EmailAddress
	Phone     *domainkit.Optional[*PhoneNumber]
	Website   *Website
	Birthday  *Birthday
	Tags      *domainkit.Collection[*Tag]
	Home      *Address
	Addresses *domainkit.Collection[*Address]
}

func (p PersonProps) Fields() domainkit.Fields {
	return domainkit.Fields{
		domainkit.ValueField("id", p.ID),
		domainkit.ValueField("name", p.Name),
		domainkit.ValueField("nickname", p.Nickname),
		domainkit.ValueField("email", p.Email),
		domainkit.ValueField("phone", p.Phone),
		domainkit.ValueField("website", p.Website),
		domainkit.ValueField("birthday", p.Birthday),
		domainkit.CollectionField("tags", p.Tags),
		domainkit.EntityField("home", p.Home),
		domainkit.CollectionField("addresses", p.Addresses),
	}
}

// Equals compares ids. Two persons without an id, whether the id is
// unset or missing from the props, are equal.
func (p PersonProps) Equals(other PersonProps) bool {
	if p.ID == nil || other.ID == nil {
		return p.ID == nil && other.ID == nil
	}
	return p.ID.Equals(other.ID)
}

type Person = domainkit.Entity[PersonProps]

var cleanTag = sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)

// Input is the plain form of a Person as read from a document. Empty
// optional strings leave the field unset; an empty phone is an explicit
// null.
type Input struct {
	ID        string         `json:"id,omitempty" yaml:"id,omitempty"`
	Name      string         `json:"name" yaml:"name"`
	Nickname  string         `json:"nickname,omitempty" yaml:"nickname,omitempty"`
	Email     string         `json:"email,omitempty" yaml:"email,omitempty"`
	Phone     string         `json:"phone,omitempty" yaml:"phone,omitempty"`
	Website   string         `json:"website,omitempty" yaml:"website,omitempty"`
	Birthday  string         `json:"birthday,omitempty" yaml:"birthday,omitempty"`
	Tags      []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Home      *AddressInput  `json:"home,omitempty" yaml:"home,omitempty"`
	Addresses []AddressInput `json:"addresses,omitempty" yaml:"addresses,omitempty"`
}

func (in Input) props() PersonProps {
	p := PersonProps{
		ID:        NewPersonID(in.ID),
		Name:      NewPersonName(sanitizer.NormalizeWhitespace(in.Name)),
		Phone:     optionalPhone(in.Phone),
		Tags:      newTags(in.Tags),
		Addresses: newAddresses(in.Addresses),
	}
	if in.Nickname != "" {
		p.Nickname = NewNickname(sanitizer.NormalizeWhitespace(in.Nickname))
	}
	if in.Email != "" {
		p.Email = NewEmailAddress(in.Email)
	}
	if in.Website != "" {
		p.Website = NewWebsite(in.Website)
	}
	if in.Birthday != "" {
		p.Birthday = NewBirthday(in.Birthday)
	}
	if in.Home != nil {
		p.Home = RestoreAddress(*in.Home)
	}
	return p
}

func optionalPhone(s string) *domainkit.Optional[*PhoneNumber] {
	if s == "" {
		return domainkit.None[*PhoneNumber]()
	}
	return domainkit.Some(NewPhoneNumber(s))
}

func newTags(ins []string) *domainkit.Collection[*Tag] {
	tags := make([]*Tag, len(ins))
	for i, s := range ins {
		tags[i] = NewTag(cleanTag(s))
	}
	return domainkit.NewCollection(tags...)
}

// NewPerson creates a validated Person. On failure the error is a
// *domainkit.ValidationFailure.
func NewPerson(in Input) (*Person, error) {
	return domainkit.Create(in.props())
}

// RestorePerson rebuilds a Person without validating it, for documents
// that are already trusted.
func RestorePerson(in Input) *Person {
	return domainkit.Reconstruct(in.props())
}

// UpdatePerson returns a new Person with patch applied, validated against p.
// p is left untouched.
func UpdatePerson(p *Person, patch Patch) (*Person, error) {
	return domainkit.Update(p, patch.Overrides()...)
}
