package contact

import (
	"github.com/dmitrymomot/domainkit"
	"github.com/dmitrymomot/domainkit/pkg/sanitizer"
)

// Patch lists the fields to change on a Person. Nil fields are kept.
// An empty string clears an optional field.
type Patch struct {
	Name      *string         `json:"name,omitempty" yaml:"name,omitempty"`
	Nickname  *string         `json:"nickname,omitempty" yaml:"nickname,omitempty"`
	Email     *string         `json:"email,omitempty" yaml:"email,omitempty"`
	Phone     *string         `json:"phone,omitempty" yaml:"phone,omitempty"`
	Website   *string         `json:"website,omitempty" yaml:"website,omitempty"`
	Birthday  *string         `json:"birthday,omitempty" yaml:"birthday,omitempty"`
	Tags      []string        `json:"tags,omitempty" yaml:"tags,omitempty"`
	Home      *AddressInput   `json:"home,omitempty" yaml:"home,omitempty"`
	Addresses *[]AddressInput `json:"addresses,omitempty" yaml:"addresses,omitempty"`
}

// Overrides converts the patch into update overrides.
func (p Patch) Overrides() []domainkit.Override[PersonProps] {
	var out []domainkit.Override[PersonProps]
	if p.Name != nil {
		out = append(out, WithName(*p.Name))
	}
	if p.Nickname != nil {
		out = append(out, WithNickname(*p.Nickname))
	}
	if p.Email != nil {
		out = append(out, WithEmail(*p.Email))
	}
	if p.Phone != nil {
		out = append(out, WithPhone(*p.Phone))
	}
	if p.Website != nil {
		out = append(out, WithWebsite(*p.Website))
	}
	if p.Birthday != nil {
		out = append(out, WithBirthday(*p.Birthday))
	}
	if p.Tags != nil {
		out = append(out, WithTags(p.Tags...))
	}
	if p.Home != nil {
		out = append(out, WithHome(*p.Home))
	}
	if p.Addresses != nil {
		out = append(out, WithAddresses(*p.Addresses...))
	}
	return out
}

func WithName(name string) domainkit.Override[PersonProps] {
	return func(p *PersonProps) {
		p.Name = NewPersonName(sanitizer.NormalizeWhitespace(name))
	}
}

func WithNickname(nickname string) domainkit.Override[PersonProps] {
	return func(p *PersonProps) {
		p.Nickname = nil
		if nickname != "" {
			p.Nickname = NewNickname(sanitizer.NormalizeWhitespace(nickname))
		}
	}
}

func WithEmail(email string) domainkit.Override[PersonProps] {
	return func(p *PersonProps) {
		p.Email = nil
		if email != "" {
			p.Email = NewEmailAddress(email)
		}
	}
}

func WithPhone(phone string) domainkit.Override[PersonProps] {
	return func(p *PersonProps) {
		p.Phone = optionalPhone(phone)
	}
}

func WithWebsite(website string) domainkit.Override[PersonProps] {
	return func(p *PersonProps) {
		p.Website = nil
		if website != "" {
			p.Website = NewWebsite(website)
		}
	}
}

func WithBirthday(birthday string) domainkit.Override[PersonProps] {
	return func(p *PersonProps) {
		p.Birthday = nil
		if birthday != "" {
			p.Birthday = NewBirthday(birthday)
		}
	}
}

func WithTags(tags ...string) domainkit.Override[PersonProps] {
	return func(p *PersonProps) {
		p.Tags = newTags(tags)
	}
}

func WithHome(home AddressInput) domainkit.Override[PersonProps] {
	return func(p *PersonProps) {
		p.Home = RestoreAddress(home)
	}
}

func WithAddresses(addresses ...AddressInput) domainkit.Override[PersonProps] {
	return func(p *PersonProps) {
		p.Addresses = newAddresses(addresses)
	}
}
