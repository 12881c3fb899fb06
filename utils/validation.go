package utils

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError is one entry of the structured detail list returned alongside a
// 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Vietnamese messages keyed by json field name. Unknown fields fall through
// to a generic message.
var fieldMessages = map[string]string{
	"ten":    "Tên homestay không được để trống",
	"diaChi": "Địa chỉ không được để trống",
	"sdt":    "Số điện thoại không được để trống",
	"q":      "Câu hỏi không được để trống",
	"a":      "Câu trả lời không được để trống",
}

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Report errors under json names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// required, but whitespace-only counts as empty too
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// ValidationDetails flattens a binding error into the per-field detail list.
// A malformed JSON body (not a validator error) yields an empty list; the
// caller still answers 400 with the generic message.
func ValidationDetails(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{}
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := jsonPath(fe.Namespace())
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = "Giá trị không hợp lệ"
		}
		details = append(details, FieldError{Field: field, Message: msg})
	}
	return details
}

// jsonPath strips the leading struct name from a validator namespace, so
// "HomestayInput.faq[0].q" becomes "faq[0].q".
func jsonPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
