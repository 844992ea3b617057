package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	pkgerrors "github.com/pkg/errors"

	"github.com/kreyol-ai/ht-lang-nlp/normalize"
)

type validation struct {
	validate *validator.Validate
	trans    ut.Translator
}

var getValidation = sync.OnceValue(func() *validation {
	enLoc := en.New()
	trans, _ := ut.New(enLoc, enLoc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = en_translations.RegisterDefaultTranslations(v, trans)
	registerCleaner(v, trans)

	return &validation{validate: v, trans: trans}
})

// registerCleaner adds the "cleaner" tag, satisfied by empty or registered names.
func registerCleaner(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterValidation("cleaner", func(fl validator.FieldLevel) bool {
		_, err := normalize.Lookup(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterTranslation("cleaner", trans,
		func(t ut.Translator) error {
			return t.Add("cleaner", "{0} must be one of: {1}", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("cleaner", fe.Field(), strings.Join(normalize.Names(), ", "))
			return msg
		},
	)
}

// decodeJSON reads a single JSON object of type T from the body, rejecting
// unknown fields and trailing data, then validates it.
func decodeJSON[T any](w http.ResponseWriter, r *http.Request, maxBytes int64) (T, error) {
	var dst T
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dst); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return dst, newAPIError(http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooBig.Limit), err)
		}
		return dst, newAPIError(http.StatusBadRequest, "invalid JSON: "+err.Error(), err)
	}
	if dec.More() {
		return dst, newAPIError(http.StatusBadRequest, "unexpected trailing data", nil)
	}

	val := getValidation()
	if err := val.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return dst, newAPIError(http.StatusBadRequest, verrs[0].Translate(val.trans), err)
		}
		return dst, pkgerrors.Wrapf(err, "server: validate %T", dst)
	}
	return dst, nil
}
