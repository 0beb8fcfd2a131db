package contact_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/domainkit"
	"github.com/dmitrymomot/domainkit/internal/contact"
)

func ptr[T any](v T) *T {
	return &v
}

func validInput() contact.Input {
	return contact.Input{
		ID:       "p-1",
		Name:     "Ada   Lovelace",
		Email:    "ada@example.com",
		Phone:    "+44 20 7946 0958",
		Website:  "https://example.com",
		Birthday: "1815-12-10",
		Tags:     []string{"admin", " Member "},
		Home:     &contact.AddressInput{Label: "home", City: "London", Postcode: "sw1a 1aa"},
		Addresses: []contact.AddressInput{
			{Label: "office", City: "Cambridge", Postcode: "CB2 1TN"},
		},
	}
}

func failureOf(t *testing.T, err error) domainkit.ValidationErrors {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, domainkit.ErrValidationFailed)
	assert.Equal(t, "validation failed", err.Error())
	return domainkit.ExtractValidationErrors(err)
}

func TestNewPerson(t *testing.T) {
	t.Run("valid person", func(t *testing.T) {
		p, err := contact.NewPerson(validInput())
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, domainkit.Created, p.Lifecycle())

		props := p.Props()
		assert.Equal(t, "Ada Lovelace", props.Name.Value())
		assert.Equal(t, "SW1A1AA", props.Home.Props().Postcode.Value())

		phone, ok := props.Phone.Get()
		require.True(t, ok)
		assert.Equal(t, "+442079460958", phone.Normalized())
	})

	t.Run("required name and undefined tag", func(t *testing.T) {
		p, err := contact.NewPerson(contact.Input{
			Name: "",
			Tags: []string{contact.TagAdmin, "bogus"},
		})
		assert.Nil(t, p)
		assert.Equal(t, domainkit.ValidationErrors{
			"name":    {"field is required"},
			"tags[1]": {"undefined flag: bogus"},
		}, failureOf(t, err))
	})

	t.Run("single failing field", func(t *testing.T) {
		in := validInput()
		in.Name = "   "
		_, err := contact.NewPerson(in)
		assert.Equal(t, domainkit.ValidationErrors{"name": {"field is required"}}, failureOf(t, err))
	})

	t.Run("nested entity failures are qualified", func(t *testing.T) {
		in := validInput()
		in.Home = &contact.AddressInput{Label: "home", City: "", Postcode: "1"}
		_, err := contact.NewPerson(in)
		assert.Equal(t, domainkit.ValidationErrors{
			"home.city":     {"field is required"},
			"home.postcode": {"must be at least 3 characters long"},
		}, failureOf(t, err))
	})

	t.Run("entity collection failures carry index and field", func(t *testing.T) {
		in := validInput()
		in.Addresses = append(in.Addresses,
			contact.AddressInput{Label: "cottage", City: "Bath", Postcode: "BA1 1AA"},
			contact.AddressInput{Label: "studio", City: "", Postcode: "EC1A 1BB"},
		)
		_, err := contact.NewPerson(in)
		assert.Equal(t, domainkit.ValidationErrors{
			"addresses[2].city": {"field is required"},
		}, failureOf(t, err))
	})

	t.Run("leaf failures across fields", func(t *testing.T) {
		in := validInput()
		in.Email = "nope"
		in.Phone = "call me"
		in.Website = "example"
		in.Birthday = "someday"
		in.Nickname = "a nickname that is far too long"
		_, err := contact.NewPerson(in)
		assert.Equal(t, domainkit.ValidationErrors{
			"email":    {"must be a valid email address"},
			"phone":    {"must be a valid phone number"},
			"website":  {"must be a valid URL"},
			"birthday": {"must be a valid date"},
			"nickname": {"must be at most 20 characters long"},
		}, failureOf(t, err))
	})
}

func TestPerson_Object(t *testing.T) {
	p, err := contact.NewPerson(contact.Input{
		Name: "Ada",
		Tags: []string{"guest"},
		Home: &contact.AddressInput{Label: "home", City: "London", Postcode: "N1 9GU"},
	})
	require.NoError(t, err)

	obj := p.Object()
	assert.Equal(t, map[string]any{
		"id":       nil,
		"name":     "Ada",
		"nickname": nil,
		"email":    nil,
		"phone":    nil,
		"website":  nil,
		"birthday": nil,
		"tags":     []any{"guest"},
		"home": map[string]any{
			"label":    "home",
			"city":     "London",
			"postcode": "N19GU",
		},
		"addresses": []any{},
	}, obj)

	bday, err := contact.NewPerson(contact.Input{Name: "Ada", Birthday: "1815-12-10"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(1815, 12, 10, 0, 0, 0, 0, time.UTC), bday.Object()["birthday"])
}

func TestRestorePerson(t *testing.T) {
	p := contact.RestorePerson(contact.Input{Name: "", Tags: []string{"bogus"}})
	require.NotNil(t, p)
	assert.Equal(t, domainkit.Reconstructed, p.Lifecycle())

	assert.Equal(t, domainkit.ValidationErrors{
		"name":    {"field is required"},
		"tags[0]": {"undefined flag: bogus"},
	}, p.GetErrors(nil))
	assert.ErrorIs(t, p.Validate(nil), domainkit.ErrValidationFailed)
}

func TestUpdatePerson(t *testing.T) {
	base, err := contact.NewPerson(validInput())
	require.NoError(t, err)
	before := base.Object()

	t.Run("successful update yields a new person", func(t *testing.T) {
		updated, err := contact.UpdatePerson(base, contact.Patch{
			Name:  ptr("Augusta Ada King"),
			Email: ptr(""),
			Tags:  []string{"guest"},
		})
		require.NoError(t, err)
		assert.Equal(t, domainkit.Updated, updated.Lifecycle())
		assert.Equal(t, "Augusta Ada King", updated.Props().Name.Value())
		assert.Nil(t, updated.Props().Email)
		assert.Equal(t, []any{"guest"}, updated.Object()["tags"])
		assert.True(t, updated.Equals(base), "identity is the id")

		assert.Equal(t, before, base.Object())
	})

	t.Run("failed update leaves the target untouched", func(t *testing.T) {
		updated, err := contact.UpdatePerson(base, contact.Patch{
			Name: ptr(""),
			Addresses: &[]contact.AddressInput{
				{Label: "office", City: "Cambridge", Postcode: "CB2 1TN"},
				{Label: "lab", City: "", Postcode: "OX1 3PU"},
			},
		})
		assert.Nil(t, updated)
		assert.Equal(t, domainkit.ValidationErrors{
			"name":              {"field is required"},
			"addresses[1].city": {"field is required"},
		}, failureOf(t, err))

		assert.Equal(t, before, base.Object())
		assert.Equal(t, domainkit.Created, base.Lifecycle())
	})

	t.Run("empty patch revalidates everything", func(t *testing.T) {
		broken := contact.RestorePerson(contact.Input{ID: "p-2", Name: ""})
		_, err := contact.UpdatePerson(broken, contact.Patch{})
		assert.Equal(t, domainkit.ValidationErrors{"name": {"field is required"}}, failureOf(t, err))
	})

	t.Run("nil target", func(t *testing.T) {
		_, err := contact.UpdatePerson(nil, contact.Patch{})
		assert.ErrorIs(t, err, domainkit.ErrInvalidUsage)
	})
}

func TestPerson_Equals(t *testing.T) {
	a := contact.RestorePerson(contact.Input{ID: "p-1", Name: "Ada"})
	b := contact.RestorePerson(contact.Input{ID: "p-1", Name: "Someone else"})
	c := contact.RestorePerson(contact.Input{ID: "p-2", Name: "Ada"})

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))

	t.Run("reflexive without an id", func(t *testing.T) {
		unsaved := contact.RestorePerson(contact.Input{Name: "Ada"})
		assert.True(t, unsaved.Equals(unsaved))
		assert.True(t, unsaved.Equals(contact.RestorePerson(contact.Input{Name: "Bob"})))
		assert.False(t, unsaved.Equals(a))

		bare := domainkit.Reconstruct(contact.PersonProps{})
		assert.True(t, bare.Equals(bare))
		assert.False(t, bare.Equals(a))
	})
}

func TestPerson_Get(t *testing.T) {
	p := contact.RestorePerson(contact.Input{Name: "Ada"})

	name, ok := p.Get("name")
	require.True(t, ok)
	assert.Equal(t, "Ada", name.(*contact.PersonName).Value())

	nickname, ok := p.Get("nickname")
	assert.True(t, ok)
	assert.Nil(t, nickname)

	_, ok = p.Get("salary")
	assert.False(t, ok)
}
