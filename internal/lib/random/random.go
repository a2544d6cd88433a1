package random

import (
	"math/rand/v2"
	"strconv"
)

// NewReference returns a four-digit booking reference in the range 1000-9999.
func NewReference() string {
	return strconv.Itoa(1000 + rand.IntN(9000))
}
