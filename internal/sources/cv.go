package sources

import (
	"io/fs"

	"github.com/scholarmark/scholarmark/pkg/content"
	"github.com/scholarmark/scholarmark/pkg/errors"
)

// CV bundles the flat configuration tables from cv.yaml. All slices are
// non-nil after loading.
type CV struct {
	Education  []content.EducationEntry  `json:"education" yaml:"education"`
	Experience []content.ExperienceEntry `json:"experience" yaml:"experience"`
	Skills     []content.SkillEntry      `json:"skills" yaml:"skills"`
	Teaching   []content.TeachingEntry   `json:"teaching" yaml:"teaching"`
}

// activitiesDocument is the on-disk shape of the locale-tagged activity
// table.
type activitiesDocument struct {
	Activities []content.ActivityEntry `yaml:"activities"`
}

// LoadCV loads the CV tables. The file is optional; a missing file
// degrades to empty tables.
func LoadCV(fsys fs.FS) (*CV, error) {
	var cv CV
	if err := readYAML(fsys, CVFile, &cv); err != nil {
		if !notExist(err) {
			return nil, errors.WrapResource("load", "cv", CVFile, err)
		}
	}

	if cv.Education == nil {
		cv.Education = []content.EducationEntry{}
	}
	if cv.Experience == nil {
		cv.Experience = []content.ExperienceEntry{}
	}
	if cv.Skills == nil {
		cv.Skills = []content.SkillEntry{}
	}
	if cv.Teaching == nil {
		cv.Teaching = []content.TeachingEntry{}
	}
	return &cv, nil
}

// LoadActivities loads the locale-tagged education-activity table. The
// file is optional; a missing file degrades to an empty table.
func LoadActivities(fsys fs.FS) ([]content.ActivityEntry, error) {
	var doc activitiesDocument
	if err := readYAML(fsys, ActivitiesFile, &doc); err != nil {
		if !notExist(err) {
			return nil, errors.WrapResource("load", "activities", ActivitiesFile, err)
		}
	}

	if doc.Activities == nil {
		doc.Activities = []content.ActivityEntry{}
	}
	return doc.Activities, nil
}
