package idempotency

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const maxKeyLength = 255

func validateKey(key string) error {
	return validation.Validate(key,
		validation.Required,
		validation.Length(1, maxKeyLength),
	)
}
