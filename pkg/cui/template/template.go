package template

import (
	"context"
	"fmt"
	"strings"
	texttemplate "text/template"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	cuierrors "github.com/diwise/cui/pkg/cui/errors"
	"github.com/diwise/cui/pkg/cui/format"
)

var tracer = otel.Tracer("cui/template")

const (
	TraceAttributeTemplateName string = "cui.template.name"
	TraceAttributeFieldCount   string = "cui.template.fields"
)

type segment struct {
	literal string
	field   string
	spec    string
}

func (s segment) isField() bool {
	return s.field != ""
}

// Template is a parsed interpolation template such as "Seen {when:*^21v} by {who}".
// A Template is immutable and safe for concurrent use.
type Template struct {
	name     string
	segments []segment
}

// Parse splits text into literal runs and {field:spec} references.
// Literal braces are written as {{ and }}.
func Parse(text string) (*Template, error) {
	t := &Template{}
	literal := strings.Builder{}

	flush := func() {
		if literal.Len() > 0 {
			t.segments = append(t.segments, segment{literal: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(text); {
		switch text[i] {
		case '{':
			if strings.HasPrefix(text[i:], "{{") {
				literal.WriteByte('{')
				i += 2
				continue
			}

			end := strings.IndexByte(text[i+1:], '}')
			if end < 0 {
				return nil, cuierrors.NewTemplateError(fmt.Sprintf("unclosed field starting at offset %d", i))
			}

			ref := text[i+1 : i+1+end]
			if strings.ContainsRune(ref, '{') {
				return nil, cuierrors.NewTemplateError(fmt.Sprintf("nested brace in field starting at offset %d", i))
			}

			field, spec, _ := strings.Cut(ref, ":")
			if field == "" {
				return nil, cuierrors.NewTemplateError(fmt.Sprintf("empty field name at offset %d", i))
			}

			flush()
			t.segments = append(t.segments, segment{field: field, spec: spec})
			i += end + 2
		case '}':
			if !strings.HasPrefix(text[i:], "}}") {
				return nil, cuierrors.NewTemplateError(fmt.Sprintf("single '}' at offset %d", i))
			}
			literal.WriteByte('}')
			i += 2
		default:
			literal.WriteByte(text[i])
			i++
		}
	}

	flush()

	return t, nil
}

// Fields returns the names referenced by the template, in order of appearance
func (t *Template) Fields() []string {
	fields := []string{}
	for _, s := range t.segments {
		if s.isField() {
			fields = append(fields, s.field)
		}
	}
	return fields
}

// Expand renders every field reference with format.Render using the value
// stored under the field name in values.
func (t *Template) Expand(ctx context.Context, values map[string]any) (result string, err error) {
	ctx, span := tracer.Start(ctx, "expand-template",
		trace.WithAttributes(attribute.String(TraceAttributeTemplateName, t.name)),
		trace.WithAttributes(attribute.Int(TraceAttributeFieldCount, len(t.Fields()))),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	sb := strings.Builder{}

	for _, s := range t.segments {
		if !s.isField() {
			sb.WriteString(s.literal)
			continue
		}

		v, ok := values[s.field]
		if !ok {
			err = cuierrors.NewUnknownFieldError(fmt.Sprintf("no value supplied for field %q", s.field))
			log.Debug("template expansion failed", "template", t.name, "err", err.Error())
			return "", err
		}

		var text string
		text, err = format.Render(v, s.spec)
		if err != nil {
			log.Warn("failed to render template field", "template", t.name, "field", s.field, "spec", s.spec, "err", err.Error())
			return "", err
		}

		sb.WriteString(text)
	}

	return sb.String(), nil
}

// Expand parses text and expands it in one go
func Expand(ctx context.Context, text string, values map[string]any) (string, error) {
	t, err := Parse(text)
	if err != nil {
		return "", err
	}

	return t.Expand(ctx, values)
}

// Funcs exposes cui rendering to text/template and html/template as
//
//	{{ cui .When "*^21v" }}
func Funcs() texttemplate.FuncMap {
	return texttemplate.FuncMap{
		"cui": func(v any, spec ...string) (string, error) {
			if len(spec) > 1 {
				return "", cuierrors.NewTemplateError(fmt.Sprintf("cui takes at most one spec, got %d", len(spec)))
			}
			if len(spec) == 0 {
				return format.Render(v, "")
			}
			return format.Render(v, spec[0])
		},
	}
}
