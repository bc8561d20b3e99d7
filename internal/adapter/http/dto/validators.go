package dto

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"regexp"
	"strings"

	"paysecure-gateway/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	safeStringRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)
	totpCodeRe   = regexp.MustCompile(`^[0-9]{6}$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Register installs the custom tags and the rail rule on v.
func Register(v *validator.Validate) {
	_ = v.RegisterValidation("safe_id", validateSafeID)
	_ = v.RegisterValidation("upi_pin", validateUPIPin)
	_ = v.RegisterValidation("card_number", validateCardNumber)
	_ = v.RegisterValidation("totp_code", validateTOTPCode)
	v.RegisterStructValidation(validatePayRequest, PayRequest{})
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return safeStringRe.MatchString(fl.Field().String())
}

func validateUPIPin(fl validator.FieldLevel) bool {
	return domain.IsValidPIN(fl.Field().String())
}

// validateCardNumber requires 16 digits passing the Luhn check.
func validateCardNumber(fl validator.FieldLevel) bool {
	n := fl.Field().String()
	return len(n) == 16 && domain.LuhnValid(n)
}

func validateTOTPCode(fl validator.FieldLevel) bool {
	return totpCodeRe.MatchString(fl.Field().String())
}

// validatePayRequest demands exactly the secret that belongs to the rail.
func validatePayRequest(sl validator.StructLevel) {
	req := sl.Current().Interface().(PayRequest)
	switch req.Rail {
	case string(domain.RailUPI):
		if req.PIN == "" {
			sl.ReportError(req.PIN, "PIN", "pin", "required_for_rail", "UPI")
		}
		if req.Card != nil {
			sl.ReportError(req.Card, "Card", "card", "excluded_for_rail", "UPI")
		}
	case string(domain.RailCard):
		if req.Card == nil {
			sl.ReportError(req.Card, "Card", "card", "required_for_rail", "CARD")
		}
		if req.PIN != "" {
			sl.ReportError(req.PIN, "PIN", "pin", "excluded_for_rail", "CARD")
		}
	}
}

// ValidationMessage renders a binding error as a short client-facing message.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}
	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_for_rail":
		return fmt.Sprintf("%s is required for rail %s", field, fe.Param())
	case "excluded_for_rail":
		return fmt.Sprintf("%s is not allowed for rail %s", field, fe.Param())
	case "upi_pin":
		return "PIN must be exactly 4 digits"
	case "card_number":
		return domain.ErrCardNumber.Error()
	case "totp_code":
		return fmt.Sprintf("%s must be a 6-digit code", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field of a struct pointer. Fields tagged sanitize:"-" are left untouched.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() || rt.Field(i).Tag.Get("sanitize") == "-" {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			switch f.Elem().Kind() {
			case reflect.String:
				f.Elem().SetString(sanitize(f.Elem().String()))
			case reflect.Struct:
				sanitizeFields(f.Elem())
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
