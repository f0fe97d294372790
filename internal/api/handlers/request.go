package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

var (
	// ErrEmptyBody is returned when a JSON body is required but missing
	ErrEmptyBody = errors.New("request body is empty")

	// ErrInvalidID is returned when a path id is not a positive integer
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidDate is returned for dates not in YYYY-MM-DD form
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// "timeofday" accepts HH:MM
	_ = v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		return types.TimeString(fl.Field().String()).Validate() == nil
	})
	// "isodate" accepts YYYY-MM-DD
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(domain.DateFormat, fl.Field().String())
		return err == nil
	})

	return v
}

// DecodeJSON reads the request body into v
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// DecodeAndValidate decodes the body and checks the struct's `validate` tags
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := DecodeJSON(r, v); err != nil {
		return err
	}
	return Validate(v)
}

// Validate checks the struct's `validate` tags and reports the first failing field
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("field %s failed %q validation", fe.Field(), fe.Tag())
	}
	return err
}

// PathID parses a positive integer path variable
func PathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidID, name, raw)
	}
	return id, nil
}

// ParseDate parses YYYY-MM-DD as a calendar date in the server's local zone
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// QueryDate parses an optional date query parameter; absent yields nil
func QueryDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// QueryID parses an optional positive integer query parameter; absent yields nil
func QueryID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidID, name, raw)
	}
	return &id, nil
}
