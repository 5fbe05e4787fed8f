package uintconv

import (
	"errors"
	"math"
)

var (
	ErrNotANumber = errors.New("not a decimal number")
	ErrOverflow   = errors.New("number overflows uint")
)

// MaxLen is the length of math.MaxUint64 in decimal.
const MaxLen = 20

// Format renders n into the tail of the passed array by successive division and returns
// the written part. No leading zeros are produced, zero renders as "0".
func Format(into *[MaxLen]byte, n uint) []byte {
	i := len(into)
	for {
		i--
		into[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			return into[i:]
		}
	}
}

// Parse is a tiny strconv.ParseUint. Empty input, any non-digit and values not fitting
// into uint are rejected.
func Parse(raw []byte) (num uint, err error) {
	if len(raw) == 0 {
		return 0, ErrNotANumber
	}

	for _, char := range raw {
		char -= '0'
		if char > 9 {
			return 0, ErrNotANumber
		}

		if num > (math.MaxUint-uint(char))/10 {
			return 0, ErrOverflow
		}

		num = num*10 + uint(char)
	}

	return num, nil
}
