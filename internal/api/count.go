package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/phrazzld/loading-phrases-api/internal/phrases"
)

// RequestedCount is the client's requested phrase count. Any JSON integer is
// accepted, including integral floats such as 8.0; values outside the int64
// range saturate by sign so they still clamp like any other out-of-range count.
type RequestedCount int

// UnmarshalJSON implements json.Unmarshaler.
func (c *RequestedCount) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("count: %w", err)
	}
	s := n.String()

	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		*c = RequestedCount(i)
		return nil
	}
	if errors.Is(err, strconv.ErrRange) {
		*c = saturate(strings.HasPrefix(s, "-"))
		return nil
	}

	f, err := n.Float64()
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("count: %w", err)
	}
	if math.IsInf(f, 0) || f >= math.MaxInt64 || f <= math.MinInt64 {
		*c = saturate(f < 0 || strings.HasPrefix(s, "-"))
		return nil
	}
	if f != math.Trunc(f) {
		return fmt.Errorf("count: %s is not an integer", s)
	}
	*c = RequestedCount(int64(f))
	return nil
}

func saturate(negative bool) RequestedCount {
	if negative {
		return phrases.MinCount
	}
	return phrases.MaxCount
}
