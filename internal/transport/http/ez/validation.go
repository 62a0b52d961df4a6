package ez

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"shuttle-checkin/internal/domain"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(wireName)
	}
}

// wireName reports fields by their json (or form) name.
func wireName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return f.Name
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// BindMessage flattens a binding error into one readable sentence.
func BindMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldMessage(fe))
		}
		return strings.Join(msgs, "; ")
	}
	if errors.Is(err, domain.ErrInvalidDate) {
		return "Data inválida, use o formato AAAA-MM-DD"
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return fmt.Sprintf("Campo %s com tipo inválido", te.Field)
	}
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return "Corpo da requisição muito grande"
	}
	if errors.Is(err, io.EOF) {
		return "Corpo da requisição vazio"
	}
	return "Requisição inválida"
}

func fieldMessage(fe validator.FieldError) string {
	f := fe.Field()
	switch fe.Tag() {
	case "required":
		return f + " é obrigatório"
	case "email":
		return f + " deve ser um e-mail válido"
	case "oneof":
		return fmt.Sprintf("%s deve ser um de: %s", f, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("%s deve ter no mínimo %s caracteres", f, fe.Param())
	case "max":
		return fmt.Sprintf("%s deve ter no máximo %s caracteres", f, fe.Param())
	}
	return f + " inválido"
}
