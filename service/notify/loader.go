package notify

import (
	"fmt"
	"os"
	"sort"

	"github.com/QuangTung97/customer-ban/model"
	"gopkg.in/yaml.v3"
)

// Names of the templates used by the ban lifecycle
const (
	TemplateBanNotice   = "ban-notice"
	TemplateUnbanNotice = "unban-notice"
	TemplateBanExpired  = "ban-expired"
)

// RequiredTemplates must be present in every templates file
var RequiredTemplates = []string{
	TemplateBanNotice,
	TemplateUnbanNotice,
	TemplateBanExpired,
}

// RequiredParameters are the parameters the ban lifecycle supplies to each required template
var RequiredParameters = map[string][]string{
	TemplateBanNotice:   {"name", "reason", "until"},
	TemplateUnbanNotice: {"name"},
	TemplateBanExpired:  {"name"},
}

type templatesFile struct {
	Templates []model.NotificationTemplate `yaml:"templates"`
}

// ParseTemplates validates every template and checks for duplicated and missing required names
func ParseTemplates(data []byte, required ...string) (map[string]*Template, error) {
	var file templatesFile
	err := yaml.Unmarshal(data, &file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}

	result := make(map[string]*Template, len(file.Templates))
	for _, t := range file.Templates {
		tmpl, err := NewTemplate(t)
		if err != nil {
			return nil, err
		}
		if _, existed := result[t.Name]; existed {
			return nil, fmt.Errorf("%w: duplicated template %q", ErrInvalidTemplate, t.Name)
		}
		result[t.Name] = tmpl
	}

	for _, name := range required {
		if _, ok := result[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
		}
	}
	return result, nil
}

func sortedCopy(values []string) []string {
	result := make([]string, len(values))
	copy(result, values)
	sort.Strings(result)
	return result
}

func sameNames(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	a = sortedCopy(a)
	b = sortedCopy(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CheckParameters requires every expected template to declare exactly the given parameter names
func CheckParameters(templates map[string]*Template, expected map[string][]string) error {
	names := make([]string, 0, len(expected))
	for name := range expected {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		tmpl, ok := templates[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
		}
		declared := tmpl.ParameterNames()
		if !sameNames(declared, expected[name]) {
			return fmt.Errorf("%w: template %q declares %v, expected %v",
				ErrInvalidTemplate, name, declared, expected[name])
		}
	}
	return nil
}

// LoadTemplates reads the templates file at startup
func LoadTemplates(filename string) (map[string]*Template, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	templates, err := ParseTemplates(data, RequiredTemplates...)
	if err != nil {
		return nil, err
	}
	if err := CheckParameters(templates, RequiredParameters); err != nil {
		return nil, err
	}
	return templates, nil
}
