package i18n

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	bindingOnce sync.Once
	bindingErr  error
)

// RegisterValidation adds the "lang" binding rule: empty or a supported language
func RegisterValidation(v *validator.Validate) error {
	return v.RegisterValidation("lang", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || IsSupported(s)
	})
}

// RegisterBinding installs the "lang" rule on gin's default validator once
func RegisterBinding() error {
	bindingOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			bindingErr = errors.New("gin validator engine is not validator/v10")
			return
		}
		bindingErr = RegisterValidation(v)
	})
	return bindingErr
}
