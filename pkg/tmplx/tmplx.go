// Package tmplx wraps text/template with a small set of helpers used to build
// user-facing strings such as order messages and outbound links.
package tmplx

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"text/template"

	"github.com/goccy/go-json"
	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
)

var (
	ErrRenderTemplate = errors.New("tmplx: render error")
	ErrParseTemplate  = errors.New("tmplx: parse error")
)

type Template struct {
	tmpl *template.Template
}

type options struct {
	funcs    template.FuncMap
	validate ValidateFunc
	testData any
}

type Option func(*options) error

// ValidateFunc checks the output of a trial render made at parse time.
type ValidateFunc func(out string) error

func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		"default":        defaultFunc,
		"json":           jsonFunc,
		"jsonGet":        jsonGet,
		"trim":           trim,
		"encodeUrlQuery": encodeURLQuery,
	}
}

// WithTemplateFunc registers fn under name, overriding a default helper of the same name.
func WithTemplateFunc(name string, fn any) Option {
	return func(o *options) error {
		if name == "" {
			return fmt.Errorf("%w: empty function name", ErrParseTemplate)
		}
		o.funcs[name] = fn
		return nil
	}
}

// WithValidate renders testData once at parse time and hands the output to fn.
func WithValidate(testData any, fn ValidateFunc) Option {
	return func(o *options) error {
		o.validate = fn
		o.testData = testData
		return nil
	}
}

func MustParse(name, text string, opts ...Option) *Template {
	t, err := Parse(name, text, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func Parse(name, text string, opts ...Option) (*Template, error) {
	o := &options{funcs: defaultFuncs()}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	tmpl, err := template.New(name).
		Option("missingkey=zero").
		Funcs(o.funcs).
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseTemplate, err)
	}

	t := &Template{tmpl: tmpl}
	if o.validate != nil {
		out, err := t.RenderString(o.testData)
		if err != nil {
			return nil, err
		}
		if err := o.validate(out); err != nil {
			return nil, fmt.Errorf("%w: validate: %w", ErrParseTemplate, err)
		}
	}
	return t, nil
}

func (t *Template) Render(data any) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	if err := t.tmpl.Execute(buf, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderTemplate, err)
	}
	return buf, nil
}

// RenderString renders data and trims surrounding whitespace.
func (t *Template) RenderString(data any) (string, error) {
	buf, err := t.Render(data)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

func defaultFunc(def, value any) any {
	if value != nil && value != "" {
		return value
	}
	return def
}

func jsonFunc(value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func jsonGet(path, raw string) string {
	return gjson.Get(raw, path).String()
}

func trim(v any) string {
	return strings.TrimSpace(cast.ToString(v))
}

// encodeURLQuery takes alternating keys and values and returns an encoded query string.
func encodeURLQuery(pairs ...any) string {
	query := url.Values{}
	for i := 0; i < len(pairs); i += 2 {
		value := ""
		if i+1 < len(pairs) {
			value = cast.ToString(pairs[i+1])
		}
		query.Add(cast.ToString(pairs[i]), value)
	}
	return query.Encode()
}
