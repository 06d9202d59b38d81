package config

import (
	"reflect"
	"strings"

	"github.com/LambdaTest/coveralls-reporter/pkg/errs"
	"github.com/LambdaTest/coveralls-reporter/pkg/linemapper"
	"github.com/LambdaTest/coveralls-reporter/pkg/lumber"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const (
	jsonTagName    = "json"
	emptyTagName   = "-"
	charsetTagName = "charset"
)

// ValidateCfg checks the validity of the config
func ValidateCfg(cfg *ReporterConfig, logger lumber.Logger) error {
	validate, trans, err := getValidator()
	if err != nil {
		return err
	}
	validateErr := validate.Struct(cfg)
	if validateErr == nil {
		if cfg.RepoToken == "" && cfg.TokenFile == "" && cfg.JobID == "" {
			logger.Debugf("no repo token, token file or job id configured, relying on the environment")
		}
		return nil
	}
	validationErrs, ok := validateErr.(validator.ValidationErrors)
	if !ok {
		return validateErr
	}
	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, e.Translate(trans))
	}
	return errs.ERR_VLD_CFG(messages)
}

func getValidator() (*validator.Validate, ut.Translator, error) {
	enObj := en.New()
	uni := ut.New(enObj, enObj)
	trans, _ := uni.GetTranslator("en")
	validate := validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, err
	}
	if err := configureValidator(validate, trans); err != nil {
		return nil, nil, err
	}
	return validate, trans, nil
}

// configureValidator names fields after their config keys and registers the charset check
func configureValidator(validate *validator.Validate, trans ut.Translator) error {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// nolint: gomnd
		name := strings.SplitN(fld.Tag.Get(jsonTagName), ",", 2)[0]
		if name == emptyTagName || name == "" {
			return fld.Name
		}
		return name
	})

	if err := validate.RegisterValidation(charsetTagName, func(fl validator.FieldLevel) bool {
		_, err := linemapper.LookupEncoding(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}

	return validate.RegisterTranslation(charsetTagName, trans, func(ut ut.Translator) error {
		return ut.Add(charsetTagName, "{0} must name a known character encoding", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(charsetTagName, fe.Field())
		return t
	})
}
