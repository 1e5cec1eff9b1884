package config

import (
	"fmt"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/cardkit/cardkit/internal/ui/components"
	cardkiterrors "github.com/cardkit/cardkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used across
// the config package. Token validators check membership in the closed
// enumerations the component library exposes.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		tokenValidator := func(tokens []string) validator.Func {
			return func(fl validator.FieldLevel) bool {
				return slices.Contains(tokens, fl.Field().String())
			}
		}

		_ = v.RegisterValidation("card_variant", tokenValidator(components.VariantTokens))
		_ = v.RegisterValidation("card_size", tokenValidator(components.SizeTokens))
		_ = v.RegisterValidation("card_padding", tokenValidator(components.PaddingTokens))

		validateInst = v
	})
	return validateInst
}

// ValidateGallery checks a gallery document against the schema rules.
func ValidateGallery(gallery *Gallery) error {
	if gallery == nil {
		return cardkiterrors.NewValidationError("", "gallery is empty", nil)
	}

	err := validatorInstance().Struct(gallery)
	if err == nil {
		return nil
	}

	if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		return cardkiterrors.NewValidationError(
			first.Namespace(),
			fmt.Sprintf("failed %q constraint", first.Tag()),
			err,
		)
	}
	return cardkiterrors.NewValidationError("", err.Error(), err)
}
