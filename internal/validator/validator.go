package validator

import (
	stderrors "errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/rowjay/countdown-token-service/internal/codec"
	"github.com/rowjay/countdown-token-service/internal/constants"
	"github.com/rowjay/countdown-token-service/internal/dto"
	"github.com/rowjay/countdown-token-service/internal/errors"
)

type CountdownValidator struct {
	validate       *validator.Validate
	maxTitleLength int
}

func NewCountdownValidator(maxTitleLength int) *CountdownValidator {
	if maxTitleLength <= 0 {
		maxTitleLength = constants.DefaultMaxTitleLength
	}
	return &CountdownValidator{
		validate:       validator.New(),
		maxTitleLength: maxTitleLength,
	}
}

func (v *CountdownValidator) ValidateCreateRequest(req *dto.CreateCountdownRequest) error {
	const op = "validator.ValidateCreateRequest"

	if err := v.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if stderrors.As(err, &fieldErrs) {
			return errors.NewValidationError(op, describe(fieldErrs), err)
		}
		return errors.NewValidationError(op, "invalid request", err)
	}

	switch {
	case req.Timestamp == nil && req.DateTime == "":
		return errors.NewValidationError(op, "either timestamp or dateTime is required", nil)
	case req.Timestamp != nil && req.DateTime != "":
		return errors.NewValidationError(op, "timestamp and dateTime are mutually exclusive", nil)
	}

	if req.Title != nil {
		return v.ValidateTitle(*req.Title)
	}
	return nil
}

func (v *CountdownValidator) ValidateTitle(title string) error {
	const op = "validator.ValidateTitle"
	if !utf8.ValidString(title) {
		return errors.NewValidationError(op, "title must be valid UTF-8", nil)
	}
	if n := utf8.RuneCountInString(title); n > v.maxTitleLength {
		return errors.NewValidationError(op,
			fmt.Sprintf("title is %d characters, limit is %d", n, v.maxTitleLength), nil)
	}
	return nil
}

// ValidateToken rejects anything that cannot be a token before it reaches the codec.
func (v *CountdownValidator) ValidateToken(token string) error {
	if len(token) < codec.MinTokenLength || !codec.IsBase62(token) {
		return errors.NewInvalidTokenError("validator.ValidateToken", "token must be at least 4 alphanumeric characters", nil)
	}
	return nil
}

func describe(fieldErrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("%s must use the YYYY-MM-DD HH:mm layout", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
