package types

import "fmt"

// Renderer is implemented by every cui value type. The spec argument uses the
// grammar parsed by format.ParseSpec, an empty spec asks for the default text.
type Renderer interface {
	Render(spec string) (string, error)
}

type Formattable interface {
	Renderer
	fmt.Formatter
	fmt.Stringer
}
