package contact

import (
	"github.com/dmitrymomot/domainkit/pkg/vo"
)

// Tag values.
const (
	TagAdmin  = "admin"
	TagMember = "member"
	TagGuest  = "guest"
)

type tagSpec struct{}

func (tagSpec) FlagTypes() []string {
	return []string{TagAdmin, TagMember, TagGuest}
}

type personNameSpec struct{ vo.TextDefaults }

func (personNameSpec) MaxLength() int { return 50 }

type nicknameSpec struct{ vo.TextDefaults }

func (nicknameSpec) MaxLength() int { return 20 }

type labelSpec struct{ vo.TextDefaults }

func (labelSpec) MaxLength() int { return 30 }

type citySpec struct{ vo.TextDefaults }

func (citySpec) MaxLength() int { return 80 }

type postcodeSpec struct{ vo.TextDefaults }

func (postcodeSpec) MinLength() int { return 3 }
func (postcodeSpec) MaxLength() int { return 10 }

type (
	emailSpec    struct{ vo.EmailDefaults }
	phoneSpec    struct{}
	websiteSpec  struct{}
	birthdaySpec struct{}
	personIDSpec struct{}
)

type (
	Tag          = vo.Flag[tagSpec]
	PersonName   = vo.Text[personNameSpec]
	Nickname     = vo.Text[nicknameSpec]
	EmailAddress = vo.Email[emailSpec]
	PhoneNumber  = vo.Phone[phoneSpec]
	Website      = vo.URL[websiteSpec]
	Birthday     = vo.Date[birthdaySpec]
	PersonID     = vo.StringID[personIDSpec]
	Label        = vo.Text[labelSpec]
	City         = vo.Text[citySpec]
	Postcode     = vo.Text[postcodeSpec]
)

func NewTag(s string) *Tag                   { return vo.NewFlag[tagSpec](s) }
func NewPersonName(s string) *PersonName     { return vo.NewText[personNameSpec](s) }
func NewNickname(s string) *Nickname         { return vo.NewText[nicknameSpec](s) }
func NewEmailAddress(s string) *EmailAddress { return vo.NewEmail[emailSpec](s) }
func NewPhoneNumber(s string) *PhoneNumber   { return vo.NewPhone[phoneSpec](s) }
func NewWebsite(s string) *Website           { return vo.NewURL[websiteSpec](s) }
func NewBirthday(s string) *Birthday         { return vo.ParseDate[birthdaySpec](s) }
func NewLabel(s string) *Label               { return vo.NewText[labelSpec](s) }
func NewCity(s string) *City                 { return vo.NewText[citySpec](s) }
func NewPostcode(s string) *Postcode         { return vo.NewText[postcodeSpec](s) }

// NewPersonID wraps id; an empty id is an unassigned one.
func NewPersonID(id string) *PersonID {
	if id == "" {
		return vo.UnsetStringID[personIDSpec]()
	}
	return vo.StringIDOf[personIDSpec](id)
}
