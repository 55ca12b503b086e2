package dto

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/clinicbase/medrec-be/internal/models"
)

// dateRequired rejects the zero Date. ozzo's Required only recognizes
// time.Time among struct types, so wrapped dates need their own rule.
var dateRequired = validation.By(func(value interface{}) error {
	d, ok := value.(models.Date)
	if !ok || d.IsZero() {
		return errors.New("cannot be blank")
	}
	return nil
})
