package nhsnumber

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	cuierrors "github.com/diwise/cui/pkg/cui/errors"
	"github.com/diwise/cui/pkg/cui/format"
	"github.com/matryer/is"
)

func TestNewKeepsSeparators(t *testing.T) {
	is := is.New(t)

	n, err := New("943 476 5919")

	is.NoErr(err)
	is.Equal(n.String(), "943 476 5919")
}

func TestNewFromInteger(t *testing.T) {
	is := is.New(t)

	n, err := New(9434765919)

	is.NoErr(err)
	is.Equal(string(n), "9434765919")
}

func TestNewFromUnsupportedShape(t *testing.T) {
	is := is.New(t)

	_, err := New(943.4765919)
	is.True(errors.Is(err, cuierrors.ErrInvalidInput))

	_, err = New(nil)
	is.True(errors.Is(err, cuierrors.ErrInvalidInput))
}

func TestRender(t *testing.T) {
	is := is.New(t)
	n, _ := New("9434765919")

	text, err := n.Render("")
	is.NoErr(err)
	is.Equal(text, "9434765919")

	text, err = n.Render("-^14v")
	is.NoErr(err)
	is.Equal(text, "--9434765919--")

	text, err = n.Render("12s")
	is.NoErr(err)
	is.Equal(text, "  9434765919")
}

func TestRenderWithUnusableSpecFails(t *testing.T) {
	is := is.New(t)
	n, _ := New("9434765919")

	_, err := n.Render(".2f")

	is.True(errors.Is(err, cuierrors.ErrInvalidInput))
}

func TestRenderThroughSharedDispatch(t *testing.T) {
	is := is.New(t)
	n, _ := New("9434765919")

	text, err := format.Render(n, ">12v")

	is.NoErr(err)
	is.Equal(text, "  9434765919")
}

func TestPrintf(t *testing.T) {
	is := is.New(t)
	n, _ := New("9434765919")

	is.Equal(fmt.Sprint(n), "9434765919")
	is.Equal(fmt.Sprintf("[%-12v]", n), "[9434765919  ]")
	is.Equal(fmt.Sprintf("%s", n), "9434765919")
	is.Equal(fmt.Sprintf("%q", n), `"9434765919"`)
	is.Equal(fmt.Sprintf("%x", n), "39343334373635393139")
}

func TestMarshalJSON(t *testing.T) {
	is := is.New(t)
	n, _ := New("943 476 5919")

	b, err := json.Marshal(struct {
		Number NHSNumber `json:"nhsNumber"`
	}{n})

	is.NoErr(err)
	is.Equal(string(b), `{"nhsNumber":"943 476 5919"}`)
}
