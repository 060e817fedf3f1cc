// Package errlocale turns the sentinel errors of
// [github.com/kschead/schemaxform] and
// [github.com/kschead/schemaxform/search] into localized, user-facing
// diagnostic strings, using the embedded bundle from [schemaxform.I18n]:
// compile the bundle once, get a localizer per request locale, and look
// messages up by key.
package errlocale

import (
	"errors"
	"fmt"

	"github.com/kaptinlin/go-i18n"

	"github.com/kschead/schemaxform"
	"github.com/kschead/schemaxform/search"
)

// Localizer renders taxonomy errors into a chosen locale's text.
type Localizer struct {
	bundle *i18n.I18n
}

// New builds a Localizer over the package-embedded locale bundle.
func New() (*Localizer, error) {
	bundle, err := schemaxform.I18n()
	if err != nil {
		return nil, fmt.Errorf("errlocale: loading bundle: %w", err)
	}
	return &Localizer{bundle: bundle}, nil
}

// Message renders err in locale. Recognized taxonomy errors (the three
// schema-parse sentinels and [search.ErrNoPath]) are looked up by key; the
// messages take no parameters. Anything else falls back to err.Error()
// unlocalized.
func (l *Localizer) Message(locale string, err error) string {
	localizer := l.bundle.NewLocalizer(locale)

	if errors.Is(err, search.ErrNoPath) {
		return localizer.Get(string(schemaxform.MsgNoPath), i18n.Vars{})
	}
	if key, ok := schemaxform.KeyForError(err); ok {
		return localizer.Get(string(key), i18n.Vars{})
	}
	return err.Error()
}
