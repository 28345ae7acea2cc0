package content

import (
	"strings"

	"github.com/goccy/go-yaml"
)

// Locale tags a content record with its language.
type Locale string

// Locales carried by the source content. The Spanish education-activity
// table is maintained independently of the English content and stays a
// separate record set; the two are not merged into one internationalized
// entity.
const (
	LocaleEN Locale = "en"
	LocaleES Locale = "es"
)

// ActivityEntry is one education-activity row, tagged with the locale its
// text is written in.
type ActivityEntry struct {
	Locale      Locale `json:"locale" yaml:"locale"`
	Institution string `json:"institution" yaml:"institution"`
	Description string `json:"description" yaml:"description"`
	Years       string `json:"years" yaml:"years"`
}

// activityYAML is the permissive wire shape: rows carry either the plain
// keys or the Spanish-suffixed legacy keys (institutionES/descriptionES),
// with an optional explicit locale tag.
type activityYAML struct {
	Locale        Locale `yaml:"locale"`
	Institution   string `yaml:"institution"`
	Description   string `yaml:"description"`
	InstitutionES string `yaml:"institutionES"`
	DescriptionES string `yaml:"descriptionES"`
	Years         string `yaml:"years"`
}

// UnmarshalYAML decodes an activity row, mapping the legacy ES-suffixed
// keys to an es-tagged record. An explicit locale tag wins; otherwise the
// locale is inferred from which key set is populated.
func (e *ActivityEntry) UnmarshalYAML(b []byte) error {
	var raw activityYAML
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return err
	}

	e.Years = strings.TrimSpace(raw.Years)

	if raw.InstitutionES != "" || raw.DescriptionES != "" {
		e.Institution = strings.TrimSpace(raw.InstitutionES)
		e.Description = strings.TrimSpace(raw.DescriptionES)
		e.Locale = LocaleES
	} else {
		e.Institution = strings.TrimSpace(raw.Institution)
		e.Description = strings.TrimSpace(raw.Description)
		e.Locale = LocaleEN
	}

	if raw.Locale != "" {
		e.Locale = raw.Locale
	}
	return nil
}
