package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"epp-portal/internal/models"
)

// FieldError names one field that failed validation together with a message
// the UI can show next to the relevant input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// UK postcode shape, case-insensitive, optional space before the inward code.
var ukPostcodeRe = regexp.MustCompile(`(?i)^[A-Z]{1,2}[0-9]{1,2}[A-Z]?\s?[0-9][A-Z]{2}$`)

// validate is the shared validator instance. Field names in error paths come
// from the json tags so they line up with what the client actually sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// ukpostcode: the UK postcode shape check used on delivery addresses.
	_ = v.RegisterValidation("ukpostcode", func(fl validator.FieldLevel) bool {
		return ukPostcodeRe.MatchString(fl.Field().String())
	})

	// storelocation: membership in the fixed pickup store enumeration.
	_ = v.RegisterValidation("storelocation", func(fl validator.FieldLevel) bool {
		_, ok := models.StoreLocations[fl.Field().String()]
		return ok
	})

	return v
}

// ValidateBasketItem shape-checks a basket item candidate. A nil result means
// the item is acceptable. This is schema validation only; semantic checking
// against the catalog is CheckAgainstCatalog's job.
func ValidateBasketItem(item *models.BasketItem) []FieldError {
	if item == nil {
		// Passing nil is a programming error, not user input.
		panic("validation: nil basket item")
	}
	return run(item)
}

// ValidateOrder checks a complete order candidate: non-empty basket, the
// delivery record's discriminated shape, contact details and the explicit
// acknowledgement gate. It never panics on malformed user input.
func ValidateOrder(order *models.Order) []FieldError {
	if order == nil {
		panic("validation: nil order")
	}
	return run(order)
}

func run(candidate interface{}) []FieldError {
	err := validate.Struct(candidate)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// An InvalidValidationError means we handed the library something
		// that is not a struct. That is a bug in the caller.
		panic(fmt.Sprintf("validation: %v", err))
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldPath(fe), Message: message(fe)})
	}
	return out
}

// fieldPath strips the top-level struct name from the error namespace, so
// "Order.delivery.contact.email" becomes "delivery.contact.email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldLabel(fe.Field()))
	case "required_if":
		if fe.Field() == "storeLocation" {
			return "Store location is required for pickup"
		}
		return "Delivery address is required"
	case "oneof":
		if fe.Field() == "method" {
			return "Please select delivery or pickup"
		}
		return fmt.Sprintf("%s is not a valid choice", fieldLabel(fe.Field()))
	case "storelocation":
		return "Unknown store location"
	case "ukpostcode":
		return "Please enter a valid UK postcode"
	case "email":
		return "Please enter a valid email address"
	case "min":
		if fe.Field() == "basket" {
			return "Basket cannot be empty"
		}
		return "Please enter a valid phone number"
	case "eq":
		return "Please confirm your order details before submitting"
	}
	return fmt.Sprintf("%s is invalid", fieldLabel(fe.Field()))
}

// fieldLabel turns a json field name into something readable in a message:
// "firstName" -> "First name".
func fieldLabel(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i == 0 {
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			b.WriteRune(r)
			continue
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
