package lib

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// HashParams builds a deterministic sha256 key from an ordered list of
// string parameters.
func HashParams(params ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(params, ",")))
	return fmt.Sprintf("%x", hash)
}
