// Package common provides the handful of byte-level constants and
// errors the instance codec shares with the rest of the module.
package common

import "errors"

// ErrInvalidBool is returned when a boolean-flag byte in the instance
// encoding is neither 0x00 nor 0x01 (§6.1, §7 kind 4).
var ErrInvalidBool = errors.New("boolean byte is neither 0x00 nor 0x01")

// HashSize is the canonical byte width of a BN254 scalar-field element
// encoding, used throughout the instance and proof codecs.
const HashSize = 32
