package schemaxform

import (
	"embed"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

// I18n returns an initialized internationalization bundle with the
// embedded diagnostic-message locales. Used by internal/errlocale to
// render [ErrInvalidSchema], [ErrArrNeedsItems], [ErrObjNeedsProperties]
// and the searcher's NoPath error in the user's chosen locale.
func I18n() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en", "es"),
	)

	if err := bundle.LoadFS(localesFS, "locales/*.json"); err != nil {
		return nil, err
	}
	return bundle, nil
}

// MessageKey names a locale message key for one of the taxonomy errors in
// errors.go plus the searcher's NoPath. It is exported so
// internal/errlocale can look errors up by identity rather than by
// matching error strings.
type MessageKey string

const (
	MsgInvalidSchema      MessageKey = "invalid_schema"
	MsgArrNeedsItems      MessageKey = "arr_needs_items"
	MsgObjNeedsProperties MessageKey = "obj_needs_properties"
	MsgNoPath             MessageKey = "no_path"
)

// KeyForError maps one of this package's sentinel errors to its locale
// message key. It returns false for errors it doesn't recognize (the
// caller should fall back to err.Error()).
func KeyForError(err error) (MessageKey, bool) {
	switch err {
	case ErrInvalidSchema:
		return MsgInvalidSchema, true
	case ErrArrNeedsItems:
		return MsgArrNeedsItems, true
	case ErrObjNeedsProperties:
		return MsgObjNeedsProperties, true
	default:
		return "", false
	}
}
