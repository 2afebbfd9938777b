package notify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/QuangTung97/customer-ban/model"
)

// Template is a validated, immutable notification template.
//
// Placeholders are written as {name}, use {{ and }} for literal braces.
type Template struct {
	name     string
	segments []segment
	params   []string
	declared map[string]struct{}
}

type segment struct {
	literal string
	param   string
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}

func parseContent(content string) ([]segment, error) {
	var segments []segment
	var literal strings.Builder

	flushLiteral := func() {
		if literal.Len() > 0 {
			segments = append(segments, segment{literal: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(content); {
		c := content[i]
		switch {
		case c == '{' && i+1 < len(content) && content[i+1] == '{':
			literal.WriteByte('{')
			i += 2

		case c == '}' && i+1 < len(content) && content[i+1] == '}':
			literal.WriteByte('}')
			i += 2

		case c == '{':
			end := i + 1
			if end >= len(content) || !isNameStart(content[end]) {
				return nil, fmt.Errorf("%w: unexpected '{' at offset %d", ErrInvalidTemplate, i)
			}
			for end < len(content) && isNameChar(content[end]) {
				end++
			}
			if end >= len(content) || content[end] != '}' {
				return nil, fmt.Errorf("%w: unclosed placeholder at offset %d", ErrInvalidTemplate, i)
			}

			flushLiteral()
			segments = append(segments, segment{param: content[i+1 : end]})
			i = end + 1

		default:
			literal.WriteByte(c)
			i++
		}
	}
	flushLiteral()
	return segments, nil
}

// NewTemplate checks that every placeholder is declared and that declared names are unique
func NewTemplate(t model.NotificationTemplate) (*Template, error) {
	if t.Name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidTemplate)
	}

	declared := make(map[string]struct{}, len(t.ParameterNames))
	for _, name := range t.ParameterNames {
		if name == "" {
			return nil, fmt.Errorf("%w: template %q declares an empty parameter name", ErrInvalidTemplate, t.Name)
		}
		if _, existed := declared[name]; existed {
			return nil, fmt.Errorf("%w: template %q declares %q twice", ErrInvalidTemplate, t.Name, name)
		}
		declared[name] = struct{}{}
	}

	segments, err := parseContent(t.Content)
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", t.Name, err)
	}

	for _, s := range segments {
		if s.param == "" {
			continue
		}
		if _, ok := declared[s.param]; !ok {
			return nil, fmt.Errorf("%w: template %q references undeclared parameter %q",
				ErrInvalidTemplate, t.Name, s.param)
		}
	}

	params := make([]string, len(t.ParameterNames))
	copy(params, t.ParameterNames)

	return &Template{
		name:     t.Name,
		segments: segments,
		params:   params,
		declared: declared,
	}, nil
}

// Name ...
func (t *Template) Name() string {
	return t.name
}

// ParameterNames returns the declared names in order
func (t *Template) ParameterNames() []string {
	result := make([]string, len(t.params))
	copy(result, t.params)
	return result
}

// Render requires params to match the declared parameter names exactly
func (t *Template) Render(params map[string]string) (string, error) {
	for _, name := range t.params {
		if _, ok := params[name]; !ok {
			return "", fmt.Errorf("%w: %q for template %q", ErrMissingParameter, name, t.name)
		}
	}

	var unknown []string
	for name := range params {
		if _, ok := t.declared[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return "", fmt.Errorf("%w: %s for template %q",
			ErrUnknownParameter, strings.Join(unknown, ", "), t.name)
	}

	var b strings.Builder
	for _, s := range t.segments {
		if s.param != "" {
			b.WriteString(params[s.param])
			continue
		}
		b.WriteString(s.literal)
	}
	return b.String(), nil
}
