package api

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/cory-johannsen/charhp/internal/game/character"
)

var registerOnce sync.Once

// registerValidators reports JSON field names in validation errors and adds
// the damage_type tag.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("damage_type", func(fl validator.FieldLevel) bool {
			return character.DamageType(fl.Field().String()).Valid()
		})
	})
}
