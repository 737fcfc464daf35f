package leads_module

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"leadcapture/commons/enums"
)

// LeadPayload is the body accepted by create and update.
type LeadPayload struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,contains=@"`
	Phone    string `json:"phone" binding:"required"`
	Interest string `json:"interest" binding:"required"`
}

type ValidationKind int

const (
	InvalidPayload ValidationKind = iota + 1
	MissingField
	InvalidEmail
)

type ValidationError struct {
	Kind  ValidationKind
	Field string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingField:
		return fmt.Sprintf(enums.FIELD_REQUIRED, e.Field)
	case InvalidEmail:
		return enums.EMAIL_INVALID
	}
	return enums.PAYLOAD_INVALID
}

// bindLead decodes and validates the request body. Missing fields are
// reported before a malformed email, in payload field order.
func bindLead(c *gin.Context) (LeadPayload, error) {
	var p LeadPayload
	err := c.ShouldBindJSON(&p)
	if err == nil {
		return p, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return p, &ValidationError{Kind: InvalidPayload}
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return p, &ValidationError{Kind: MissingField, Field: jsonName(fe.StructField())}
		}
	}
	return p, &ValidationError{Kind: InvalidEmail, Field: "email"}
}

func jsonName(structField string) string {
	f, ok := reflect.TypeOf(LeadPayload{}).FieldByName(structField)
	if !ok {
		return structField
	}
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	return name
}
