package name

import (
	"github.com/diwise/cui/pkg/cui/format"
)

// Name is a person's name.
//
// There is no agreed display format for names yet, so Name has no rendering
// of its own. Printing or rendering a Name fails with ErrUnimplementedCapability
// until one is added.
type Name struct {
	format.Base

	lastName  string
	firstName string
}

func New(lastName, firstName string) Name {
	return Name{
		lastName:  lastName,
		firstName: firstName,
	}
}

func (n Name) LastName() string {
	return n.lastName
}

func (n Name) FirstName() string {
	return n.firstName
}
