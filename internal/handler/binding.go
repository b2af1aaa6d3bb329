package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"gamecatalog/backend/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerTagNameOnce sync.Once

// useJSONFieldNames makes validation errors report json names ("name")
// instead of Go field names ("Name").
func useJSONFieldNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	})
}

// bindJSON decodes the body into obj rejecting unknown properties and any
// content after the first value, then runs the binding validators. An empty
// body decodes as {}.
func bindJSON(c *gin.Context, obj interface{}) error {
	useJSONFieldNames()

	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		if !errors.Is(err, io.EOF) {
			return decodeError(obj, err)
		}
	} else {
		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return apperror.BadRequest("Malformed JSON body")
		}
	}

	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return validationError(err)
	}
	return nil
}

func decodeError(obj interface{}, err error) error {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			return apperror.ValidationFailed([]string{"body must be an object"})
		}
		if isElementOf(obj, field, typeErr.Type) {
			return apperror.ValidationFailed([]string{fmt.Sprintf("each value in %s must be %s", field, kindName(typeErr.Type))})
		}
		return apperror.ValidationFailed([]string{fmt.Sprintf("%s must be %s", field, kindName(typeErr.Type))})
	case strings.Contains(err.Error(), "unknown field"):
		return apperror.ValidationFailed([]string{fmt.Sprintf("property %s should not exist", unknownField(err))})
	default:
		return apperror.BadRequest("Malformed JSON body")
	}
}

func unknownField(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, "unknown field"); i >= 0 {
		msg = msg[i+len("unknown field"):]
	}
	return strings.Trim(strings.TrimSpace(msg), `"`)
}

// isElementOf reports whether t is the element type of the slice field of
// obj whose json name is field, i.e. the mismatch was inside the array.
func isElementOf(obj interface{}, field string, t reflect.Type) bool {
	v := reflect.TypeOf(obj)
	for v != nil && v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v == nil || v.Kind() != reflect.Struct || t == nil {
		return false
	}
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if strings.SplitN(f.Tag.Get("json"), ",", 2)[0] != field {
			continue
		}
		return f.Type.Kind() == reflect.Slice && f.Type.Elem() == t
	}
	return false
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.String {
			return "an array of strings"
		}
		return "an array"
	case reflect.Ptr:
		return kindName(t.Elem())
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
		return "an integer"
	default:
		return "a " + t.Kind().String()
	}
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.BadRequest(err.Error())
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s must be %s", fe.Field(), kindName(fe.Type())))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be shorter than or equal to %s characters", fe.Field(), fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return apperror.ValidationFailed(messages)
}

// parseID reads the :id path parameter.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperror.BadRequest("Bad request")
	}
	return uint(id), nil
}
