// Package ids generates short URL-safe random identifiers used for
// idempotency keys and OAuth state tokens.
package ids

import (
	gonanoid "github.com/jaevor/go-nanoid"
)

var generate func() string

func init() {
	gen, err := gonanoid.Standard(21)
	if err != nil {
		panic(err)
	}
	generate = gen
}

func New() string {
	return generate()
}
