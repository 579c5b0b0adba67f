package pasta

import (
	"github.com/pkg/errors"
)

var (
	// ErrBufferLength is returned when a fixed-size buffer has the wrong length
	ErrBufferLength = errors.New("pasta: wrong buffer length")
	// ErrEvenModulus is returned for a modulus that is not odd; Montgomery
	// reduction needs the modulus to be invertible mod 2^64
	ErrEvenModulus = errors.New("pasta: modulus must be odd")
	// ErrModulusTooSmall is returned for the modulus 1
	ErrModulusTooSmall = errors.New("pasta: modulus must be greater than 1")
)
