package model

import (
	_ "embed"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/xeipuuv/gojsonschema"

	"career-hub/internal/domain"
)

//go:embed resume.schema.json
var resumeSchema []byte

var schemaLoader = gojsonschema.NewBytesLoader(resumeSchema)

// ValidateResume validates a resume document against resume.schema.json.
func ValidateResume(r Resume) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(r))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}

var (
	notBlankTag  = "notblank"
	notBlankText = "{0} cannot be empty"

	courseTag  = "course"
	courseText = "{0} must be one of the listed courses"

	academicYearTag  = "academic_year"
	academicYearText = "{0} must be one of the listed academic years"

	documentURLTag  = "document_url"
	documentURLText = "{0} must be a valid URL"
)

// NewValidator builds the request validator. Field errors use JSON tag names
// and are translated to English.
func NewValidator() (*validator.Validate, ut.Translator) {
	english := en.New()
	translator, _ := ut.New(english, english).GetTranslator("en")

	validate := validator.New()
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, notBlank)
	registerTranslation(validate, translator, notBlankTag, notBlankText)

	_ = validate.RegisterValidation(courseTag, oneOfList(domain.CourseOptions))
	registerTranslation(validate, translator, courseTag, courseText)

	_ = validate.RegisterValidation(academicYearTag, oneOfList(domain.AcademicYearOptions))
	registerTranslation(validate, translator, academicYearTag, academicYearText)

	_ = validate.RegisterValidation(documentURLTag, documentURL)
	registerTranslation(validate, translator, documentURLTag, documentURLText)

	return validate, translator
}

func registerTranslation(validate *validator.Validate, translator ut.Translator, tag, text string) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// notBlank rejects strings that are empty after trimming whitespace.
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

// documentURL applies the schema's uri format to a string field, so a URL
// accepted here also passes ValidateResume.
func documentURL(fl validator.FieldLevel) bool {
	return gojsonschema.FormatCheckers.IsFormat("uri", fl.Field().String())
}

func oneOfList(options []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		for _, o := range options {
			if v == o {
				return true
			}
		}
		return false
	}
}
