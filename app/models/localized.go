package models

import (
	"strings"

	"github.com/hitechrobotics/catalog-api/app/utils/locale"
)

// Text is a translatable attribute. Embedded with a prefix, e.g.
//
//	Name Text `gorm:"embedded;embeddedPrefix:name_"`
//
// it is stored as the name_en, name_ru and name_uz columns.
type Text struct {
	En string `gorm:"type:text" json:"en"`
	Ru string `gorm:"type:text" json:"ru"`
	Uz string `gorm:"type:text" json:"uz"`
}

func NewText(en, ru, uz string) Text {
	return Text{En: en, Ru: ru, Uz: uz}
}

// Get returns the stored variant for l without any fallback.
func (t Text) Get(l locale.Locale) string {
	switch l {
	case locale.RU:
		return t.Ru
	case locale.UZ:
		return t.Uz
	default:
		return t.En
	}
}

func (t *Text) Set(l locale.Locale, value string) {
	switch l {
	case locale.RU:
		t.Ru = value
	case locale.UZ:
		t.Uz = value
	default:
		t.En = value
	}
}

// Default is the variant of the default locale.
func (t Text) Default() string {
	return t.En
}

// Resolve returns the variant for l, or the default variant when that one is
// blank.
func (t Text) Resolve(l locale.Locale) string {
	if v := t.Get(l); strings.TrimSpace(v) != "" {
		return v
	}
	return t.En
}

func (t Text) IsZero() bool {
	return strings.TrimSpace(t.En) == "" && strings.TrimSpace(t.Ru) == "" && strings.TrimSpace(t.Uz) == ""
}
