package model

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// FlexInt is an int the backend serialises inconsistently: some analytics
// and bond-report counters arrive as JSON strings ("12"), others as numbers.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "flexint: invalid string count")
		}
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return errors.Wrapf(err, "flexint: unparseable count %q", s)
		}
		*f = FlexInt(n)
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return errors.Wrapf(err, "flexint: unparseable count %s", data)
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}
