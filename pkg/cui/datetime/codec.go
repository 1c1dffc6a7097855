package datetime

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	cuierrors "github.com/diwise/cui/pkg/cui/errors"
)

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON accepts seconds since the epoch, a string in the NHS standard
// format or an RFC 3339 string. A null leaves the Timestamp unchanged.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw any
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("failed to unmarshal timestamp: %w", err)
	}

	return ts.decode(raw)
}

func (ts Timestamp) MarshalYAML() (any, error) {
	return ts.String(), nil
}

// UnmarshalYAML accepts the same shapes as UnmarshalJSON
func (ts *Timestamp) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	err := unmarshal(&raw)
	if err != nil {
		return err
	}

	if raw == nil {
		return nil
	}

	return ts.decode(raw)
}

func (ts *Timestamp) decode(raw any) error {
	var parsed Timestamp
	var err error

	switch value := raw.(type) {
	case string:
		parsed, err = parseText(value)
	case float64, int, int64, uint64, time.Time:
		parsed, err = New(value)
	default:
		err = cuierrors.NewInvalidInputError(fmt.Sprintf("unable to decode a timestamp from a value of type %T", raw))
	}

	if err != nil {
		return err
	}

	*ts = parsed
	return nil
}

// parseText accepts the NHS standard format and falls back to RFC 3339 so that
// the output of MarshalJSON can be read back
func parseText(text string) (Timestamp, error) {
	ts, err := New(text)
	if err == nil || !errors.Is(err, cuierrors.ErrFormatMismatch) {
		return ts, err
	}

	t, rfcErr := time.Parse(time.RFC3339Nano, text)
	if rfcErr != nil {
		return Timestamp{}, err
	}

	return Timestamp{Time: t}, nil
}
