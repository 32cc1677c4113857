package migration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrations_OrderAndIdempotence(t *testing.T) {
	ms := Migrations()
	names := make([]string, 0, len(ms))
	for _, m := range ms {
		names = append(names, m.Name)
		assert.NotNil(t, m.Up)
	}
	assert.Equal(t, []string{
		"create_profiles",
		"create_skills",
		"create_skills_user_name_index",
		"create_projects",
		"create_certifications",
		"create_resume_exports",
	}, names)

	for _, q := range []string{createProfiles, createSkills, createSkillsUserNameIndex, createProjects, createCertifications, createResumeExports} {
		assert.Contains(t, q, "IF NOT EXISTS")
		assert.False(t, strings.Contains(strings.ToUpper(q), "DROP "))
	}
}
