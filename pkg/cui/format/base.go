package format

import (
	"fmt"

	cuierrors "github.com/diwise/cui/pkg/cui/errors"
)

// Base is embedded by cui value types that do not yet know how to render
// themselves. Every rendering path through Base fails with
// ErrUnimplementedCapability so that an incomplete type is noticed the first
// time it is printed instead of being silently printed as a struct.
type Base struct{}

func (Base) Render(spec string) (string, error) {
	return "", errUnimplemented()
}

func (Base) Format(f fmt.State, verb rune) {
	panic(errUnimplemented())
}

func (Base) String() string {
	panic(errUnimplemented())
}

func errUnimplemented() error {
	return cuierrors.NewUnimplementedCapabilityError(
		"all cui data types must implement their own rendering if their underlying type does not support it",
	)
}
