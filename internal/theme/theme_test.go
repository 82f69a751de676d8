package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByName(t *testing.T) {
	assert.Equal(t, "light", ByName("light").Name)
	assert.Equal(t, "dark", ByName("dark").Name)
	assert.Equal(t, "high-contrast", ByName("high-contrast").Name)

	// Unknown names fall back to light
	assert.Equal(t, "light", ByName("").Name)
	assert.Equal(t, "light", ByName("solarized").Name)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{"light", "dark", "high-contrast"}, names)

	for _, name := range names {
		assert.Equal(t, name, ByName(name).Name)
	}
}

func TestPalettesComplete(t *testing.T) {
	for _, name := range Names() {
		p := ByName(name)
		assert.NotEmpty(t, p.Text, "%s text", name)
		assert.NotEmpty(t, p.Accent, "%s accent", name)
		assert.NotEmpty(t, p.Background, "%s background", name)
		assert.NotEmpty(t, p.Error, "%s error", name)
	}
}

func TestStatusStyle(t *testing.T) {
	p := ByName("dark")
	assert.Equal(t, p.Error, p.Status(true).GetForeground())
	assert.Equal(t, p.Muted, p.Status(false).GetForeground())
}
