package sources

import (
	"io/fs"

	"github.com/scholarmark/scholarmark/pkg/content"
	"github.com/scholarmark/scholarmark/pkg/errors"
)

// profileDocument is the on-disk shape of profile.yaml: the profile
// fields at the top level with the social links nested under one key.
type profileDocument struct {
	content.Profile `yaml:",inline"`
	Social          content.SocialLinks `yaml:"social"`
}

// LoadProfile loads the profile record and social links. The file is
// required; a missing file is an error.
func LoadProfile(fsys fs.FS) (content.Profile, content.SocialLinks, error) {
	var doc profileDocument
	if err := readYAML(fsys, ProfileFile, &doc); err != nil {
		if notExist(err) {
			return content.Profile{}, content.SocialLinks{}, errors.NewNotFoundError("content file", ProfileFile)
		}
		return content.Profile{}, content.SocialLinks{}, errors.WrapResource("load", "profile", ProfileFile, err)
	}

	return doc.Profile.Normalize(), doc.Social, nil
}
