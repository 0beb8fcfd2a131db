package vo_test

import (
	"github.com/dmitrymomot/domainkit"
	"github.com/dmitrymomot/domainkit/pkg/vo"
)

type plainText struct{ vo.TextDefaults }

type shortText struct{ vo.TextDefaults }

func (shortText) MinLength() int { return 2 }
func (shortText) MaxLength() int { return 5 }

type plainEmail struct{ vo.EmailDefaults }

type anyNumber struct{ vo.NumberDefaults }

type percent struct{ vo.NumberDefaults }

func (percent) Min() (float64, bool) { return 0, true }
func (percent) Max() (float64, bool) { return 100, true }

type clampedPercent struct{ percent }

func (clampedPercent) Truncate() bool { return true }

type role struct{}

func (role) FlagTypes() []string { return []string{"admin", "member"} }

type userID struct{}

func errs(name string, messages ...string) []domainkit.ValidationError {
	out := make([]domainkit.ValidationError, len(messages))
	for i, m := range messages {
		out[i] = domainkit.ValidationError{Name: name, Message: m}
	}
	return out
}

// recoverError runs fn and returns the error it panicked with, if any.
func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}
