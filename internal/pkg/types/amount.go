package types

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Amount is a money value in integer cents. It decodes from a JSON number or a
// numeric string; null or "" leave it unset.
type Amount struct {
	Cents int64
	Set   bool
}

func NewAmount(cents int64) Amount { return Amount{Cents: cents, Set: true} }

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = Amount{}
		return nil
	}
	s := string(b)
	if len(b) > 0 && b[0] == '"' {
		unq, err := strconv.Unquote(s)
		if err != nil {
			return ErrInvalidAmount
		}
		s = strings.TrimSpace(unq)
		if s == "" {
			*a = Amount{}
			return nil
		}
	}
	n, err := parseCents(s)
	if err != nil {
		return err
	}
	*a = Amount{Cents: n, Set: true}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(a.Cents, 10)), nil
}

func parseCents(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	// accept integral floats such as 1500.0
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64/2 {
		return 0, ErrInvalidAmount
	}
	return int64(f), nil
}
