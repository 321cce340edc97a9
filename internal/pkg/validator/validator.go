package validator

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/transport-admin/internal/pkg/utils"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// hhmm - каждое значение списка должно быть временем "ЧЧ:ММ"
	_ = validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return utils.ValidTimeOfDay(fl.Field().String())
	})

	// coordinate - строковая координата, парсится и попадает в диапазон
	_ = validate.RegisterValidation("latitude_str", func(fl validator.FieldLevel) bool {
		lat, ok := parseCoord(fl.Field().String())
		return ok && lat >= -90 && lat <= 90
	})
	_ = validate.RegisterValidation("longitude_str", func(fl validator.FieldLevel) bool {
		lon, ok := parseCoord(fl.Field().String())
		return ok && lon >= -180 && lon <= 180
	})
}

func parseCoord(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
