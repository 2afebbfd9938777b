package notify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const templatesYAML = `
templates:
  - name: ban-notice
    content: "Dear {name}: {reason} until {until}"
    parameter_names: [name, reason, until]
  - name: unban-notice
    content: "Dear {name}, welcome back"
    parameter_names: [name]
  - name: ban-expired
    content: "Dear {name}, your ban ended"
    parameter_names: [name]
`

func TestParseTemplates(t *testing.T) {
	templates, err := ParseTemplates([]byte(templatesYAML), RequiredTemplates...)
	require.NoError(t, err)
	assert.Equal(t, 3, len(templates))
	assert.Equal(t, []string{"name", "reason", "until"}, templates[TemplateBanNotice].ParameterNames())
}

func TestParseTemplates__Missing_Required(t *testing.T) {
	_, err := ParseTemplates([]byte(templatesYAML), TemplateBanNotice, "welcome")
	assert.True(t, errors.Is(err, ErrTemplateNotFound))
}

func TestParseTemplates__Duplicated(t *testing.T) {
	data := templatesYAML + `
  - name: ban-expired
    content: "again"
    parameter_names: []
`
	_, err := ParseTemplates([]byte(data))
	assert.True(t, errors.Is(err, ErrInvalidTemplate))
}

func TestParseTemplates__Invalid_YAML(t *testing.T) {
	_, err := ParseTemplates([]byte("templates: ["))
	assert.True(t, errors.Is(err, ErrInvalidTemplate))
}

func TestCheckParameters(t *testing.T) {
	templates, err := ParseTemplates([]byte(templatesYAML), RequiredTemplates...)
	require.NoError(t, err)

	err = CheckParameters(templates, RequiredParameters)
	assert.Equal(t, nil, err)
}

func TestCheckParameters__Order_Does_Not_Matter(t *testing.T) {
	templates, err := ParseTemplates([]byte(templatesYAML), RequiredTemplates...)
	require.NoError(t, err)

	err = CheckParameters(templates, map[string][]string{
		TemplateBanNotice: {"until", "name", "reason"},
	})
	assert.Equal(t, nil, err)
}

func TestCheckParameters__Declared_Names_Differ(t *testing.T) {
	data := `
templates:
  - name: ban-notice
    content: "Dear {name}: {reason}"
    parameter_names: [name, reason]
`
	templates, err := ParseTemplates([]byte(data))
	require.NoError(t, err)

	err = CheckParameters(templates, RequiredParameters)
	assert.True(t, errors.Is(err, ErrInvalidTemplate))
}

func TestCheckParameters__Template_Missing(t *testing.T) {
	err := CheckParameters(map[string]*Template{}, RequiredParameters)
	assert.True(t, errors.Is(err, ErrTemplateNotFound))
}

func TestLoadTemplates__Parameters_Checked(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "templates.yml")
	data := `
templates:
  - name: ban-notice
    content: "Dear {name}"
    parameter_names: [name]
  - name: unban-notice
    content: "Dear {name}"
    parameter_names: [name]
  - name: ban-expired
    content: "Dear {name}"
    parameter_names: [name]
`
	require.NoError(t, os.WriteFile(filename, []byte(data), 0o600))

	_, err := LoadTemplates(filename)
	assert.True(t, errors.Is(err, ErrInvalidTemplate))
}

func TestLoadTemplates__Repository_File(t *testing.T) {
	templates, err := LoadTemplates(filepath.Join("..", "..", "templates.yml"))
	require.NoError(t, err)
	for _, name := range RequiredTemplates {
		assert.Contains(t, templates, name)
	}
}

func TestLoadTemplates__File_Not_Found(t *testing.T) {
	_, err := LoadTemplates(filepath.Join(t.TempDir(), "templates.yml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
