package launchopts

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// tagServiceID is the validator tag for LogcatServiceId values.
const tagServiceID = "serviceid"

// fieldValidator checks single attribute values. validator.Validate caches
// its rules and is safe for concurrent use.
var fieldValidator = newFieldValidator()

func newFieldValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation(tagServiceID, func(fl validator.FieldLevel) bool {
		_, err := ParseServiceID(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// checkAttribute runs the validator tag against one attribute value. A failed
// "required" rule is a missing attribute; any other failure is an invalid one.
func (c *catalog) checkAttribute(name, value, tag string) error {
	err := fieldValidator.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 && fieldErrs[0].Tag() == "required" {
		return missingAttribute(c, name)
	}
	return invalidAttribute(c, name)
}

func (c *catalog) logcatServiceID(value string) (uuid.UUID, error) {
	if err := c.checkAttribute(AttrLogcatServiceID, value, "omitempty,"+tagServiceID); err != nil {
		return uuid.Nil, err
	}
	if value == "" {
		return uuid.Nil, nil
	}
	return ParseServiceID(value)
}
