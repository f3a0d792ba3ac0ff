// Package validation guards train records against out-of-range and mutually
// inconsistent seat and price values.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/changzc22/SM-Assignment-sub000/internal/ident"
	"github.com/go-playground/validator/v10"
)

const (
	FieldID              = "trainId"
	FieldDestination     = "destination"
	FieldStandardSeatQty = "standardSeatQty"
	FieldPremiumSeatQty  = "premiumSeatQty"
	FieldStandardPrice   = "standardPrice"
	FieldPremiumPrice    = "premiumPrice"
)

var destinationPattern = regexp.MustCompile(`^[A-Za-z ]+$`)

type trainRules struct {
	ID              string  `name:"trainId"         validate:"required,train_id"`
	Destination     string  `name:"destination"     validate:"required,max=15,destination"`
	StandardSeatQty int     `name:"standardSeatQty" validate:"min=1,max=999,gtfield=PremiumSeatQty"`
	PremiumSeatQty  int     `name:"premiumSeatQty"  validate:"min=0,max=998"`
	StandardPrice   float64 `name:"standardPrice"   validate:"min=50,max=999.98,ltfield=PremiumPrice"`
	PremiumPrice    float64 `name:"premiumPrice"    validate:"min=50.01,max=999.99"`
}

// cross-field rules keyed by the field carrying the tag
var pairRules = map[string]struct {
	rule, inverse string
}{
	"gtfield": {rule: "must be greater than", inverse: "must be less than"},
	"ltfield": {rule: "must be less than", inverse: "must be greater than"},
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("name")
	})
	_ = v.RegisterValidation("train_id", func(fl validator.FieldLevel) bool {
		return ident.Valid(ident.TrainPrefix, fl.Field().String())
	})
	_ = v.RegisterValidation("destination", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return strings.TrimSpace(s) != "" && destinationPattern.MatchString(s)
	})
	return &Validator{v: v}
}

// Train checks every rule against t. When changed names the fields being
// modified, only rules touching one of them are checked, and a failure is
// reported from the changed field's point of view with the current value of
// its paired field. Rules between untouched fields are left alone.
func (v *Validator) Train(t domain.Train, changed ...string) error {
	r := trainRules{
		ID:              t.ID,
		Destination:     t.Destination,
		StandardSeatQty: t.StandardSeatQty,
		PremiumSeatQty:  t.PremiumSeatQty,
		StandardPrice:   t.StandardPrice,
		PremiumPrice:    t.PremiumPrice,
	}

	err := v.v.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	values := fieldValues(r)
	if len(changed) == 0 {
		return translate(verrs[0], values)
	}

	var inverted *domain.FieldError
	for _, fe := range verrs {
		res := translate(fe, values)
		if slices.Contains(changed, res.Field) {
			return res
		}
		if inverted == nil && res.ConflictField != "" && slices.Contains(changed, res.ConflictField) {
			inverted = invert(res, fe.Tag())
		}
	}

	if inverted != nil {
		return inverted
	}
	return nil
}

func fieldValues(r trainRules) map[string]any {
	return map[string]any{
		FieldID:              r.ID,
		FieldDestination:     r.Destination,
		FieldStandardSeatQty: r.StandardSeatQty,
		FieldPremiumSeatQty:  r.PremiumSeatQty,
		FieldStandardPrice:   r.StandardPrice,
		FieldPremiumPrice:    r.PremiumPrice,
	}
}

func translate(fe validator.FieldError, values map[string]any) *domain.FieldError {
	res := &domain.FieldError{Field: fe.Field(), Value: fe.Value()}

	switch fe.Tag() {
	case "required":
		res.Rule = "is required"
	case "min":
		res.Rule = "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			res.Rule = "must be at most " + fe.Param() + " characters"
		} else {
			res.Rule = "must be at most " + fe.Param()
		}
	case "gtfield", "ltfield":
		res.Rule = pairRules[fe.Tag()].rule
		res.ConflictField = lowerFirst(fe.Param())
		res.ConflictValue = values[res.ConflictField]
	case "train_id":
		res.Rule = "must be " + ident.TrainPrefix + " followed by 3 digits"
	case "destination":
		res.Rule = "must contain only letters and spaces"
	default:
		res.Rule = "failed " + fe.Tag()
	}

	return res
}

func invert(fe *domain.FieldError, tag string) *domain.FieldError {
	return &domain.FieldError{
		Field:         fe.ConflictField,
		Value:         fe.ConflictValue,
		Rule:          pairRules[tag].inverse,
		ConflictField: fe.Field,
		ConflictValue: fe.Value,
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
