package models

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// RegisterValidation teaches validate to treat Timestamp like time.Time so
// tags such as required see the zero value.
func RegisterValidation(validate *validator.Validate) {
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if ts, ok := field.Interface().(Timestamp); ok {
			return ts.Time
		}
		return nil
	}, Timestamp{})
}
