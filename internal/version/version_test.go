package version

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	t.Run("follows semver format", func(t *testing.T) {
		semverPattern := regexp.MustCompile(`^\d+\.\d+\.\d+$`)
		assert.True(t, semverPattern.MatchString(Version), "Version should follow semver format (x.y.z)")
	})

	t.Run("is not empty", func(t *testing.T) {
		assert.NotEmpty(t, Version)
	})
}
