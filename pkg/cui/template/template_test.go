package template

import (
	"bytes"
	"context"
	"errors"
	"testing"
	texttemplate "text/template"

	"github.com/matryer/is"

	"github.com/diwise/cui/pkg/cui/datetime"
	cuierrors "github.com/diwise/cui/pkg/cui/errors"
	"github.com/diwise/cui/pkg/cui/name"
	"github.com/diwise/cui/pkg/cui/nhsnumber"
)

func TestExpandLiteralOnly(t *testing.T) {
	is := is.New(t)

	text, err := Expand(context.Background(), "no fields here", nil)

	is.NoErr(err)
	is.Equal(text, "no fields here")
}

func TestExpandEscapedBraces(t *testing.T) {
	is := is.New(t)

	text, err := Expand(context.Background(), "{{literal}} {n}", map[string]any{"n": 7})

	is.NoErr(err)
	is.Equal(text, "{literal} 7")
}

func TestExpandCuiValues(t *testing.T) {
	is, values := setupExpandTest(t)

	text, err := Expand(context.Background(), "[{when:*^21v}] patient {nhs:>12v}", values)

	is.NoErr(err)
	is.Equal(text, "[**01-Jan-1970 01:20**] patient   9434765919")
}

func TestExpandWithoutSpecUsesDefaultText(t *testing.T) {
	is, values := setupExpandTest(t)

	text, err := Expand(context.Background(), "{when}", values)

	is.NoErr(err)
	is.Equal(text, "1970-01-01T01:20:00Z")
}

func TestExpandPrimitivesUseGeneralFormatting(t *testing.T) {
	is := is.New(t)

	text, err := Expand(context.Background(), "{pi:.2f}|{n:04d}", map[string]any{"pi": 3.14159, "n": 42})

	is.NoErr(err)
	is.Equal(text, "3.14|0042")
}

func TestExpandPadsPlainValues(t *testing.T) {
	is := is.New(t)

	text, err := Expand(context.Background(), "[{ward:*^12v}] [{bed:>4v}]", map[string]any{"ward": "abc", "bed": 42})

	is.NoErr(err)
	is.Equal(text, "[****abc*****] [  42]")
}

func TestExpandRejectsUnusableSpec(t *testing.T) {
	is := is.New(t)

	_, err := Expand(context.Background(), "{bed:*^12}", map[string]any{"bed": 42})

	is.True(errors.Is(err, cuierrors.ErrInvalidInput))
}

func TestExpandMissingField(t *testing.T) {
	is, values := setupExpandTest(t)

	_, err := Expand(context.Background(), "{when} {where}", values)

	is.True(errors.Is(err, cuierrors.ErrUnknownField))
}

func TestExpandPropagatesRenderErrors(t *testing.T) {
	is := is.New(t)

	_, err := Expand(context.Background(), "{who}", map[string]any{"who": name.New("Flury", "Tony")})

	is.True(errors.Is(err, cuierrors.ErrUnimplementedCapability))
}

func TestParseErrors(t *testing.T) {
	is := is.New(t)

	for _, text := range []string{"{when", "when}", "{}", "{:10v}", "{a{b}}"} {
		_, err := Parse(text)
		is.True(errors.Is(err, cuierrors.ErrTemplate)) // every malformed template is a template error
	}
}

func TestFields(t *testing.T) {
	is := is.New(t)

	tmpl, err := Parse("{a} and {b:10v} but not {{c}}")

	is.NoErr(err)
	is.Equal(tmpl.Fields(), []string{"a", "b"})
}

func TestFuncsWithTextTemplate(t *testing.T) {
	is, values := setupExpandTest(t)

	tmpl, err := texttemplate.New("t").Funcs(Funcs()).Parse(`{{ cui .when "*^21v" }}|{{ cui .nhs }}`)
	is.NoErr(err)

	buf := &bytes.Buffer{}
	is.NoErr(tmpl.Execute(buf, values))
	is.Equal(buf.String(), "**01-Jan-1970 01:20**|9434765919")
}

func TestFuncsReportsRenderErrors(t *testing.T) {
	is := is.New(t)

	tmpl, err := texttemplate.New("t").Funcs(Funcs()).Parse(`{{ cui .who }}`)
	is.NoErr(err)

	err = tmpl.Execute(&bytes.Buffer{}, map[string]any{"who": name.New("Flury", "Tony")})
	is.True(errors.Is(err, cuierrors.ErrUnimplementedCapability))
}

func setupExpandTest(t *testing.T) (*is.I, map[string]any) {
	is := is.New(t)

	when, err := datetime.New(4800)
	is.NoErr(err)

	nhs, err := nhsnumber.New("9434765919")
	is.NoErr(err)

	return is, map[string]any{
		"when": when,
		"nhs":  nhs,
	}
}
