package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"ProductAPI/pkg/kit"
)

const maxBodyBytes = 1 << 20

var (
	ErrMissingFields = errors.New("missing required product fields")
	ErrInvalidBody   = errors.New("invalid json body")
)

// ProductInput is the create/update request body. Price and InStock are
// pointers so that 0 and false count as present.
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	InStock     *bool    `json:"inStock" validate:"required"`
}

func (in ProductInput) Fields() Fields {
	return Fields{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Category:    in.Category,
		InStock:     *in.InStock,
	}
}

type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate reports ErrMissingFields if any required field is absent or empty.
func (v *Validator) Validate(in ProductInput) error {
	err := v.v.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s", ErrMissingFields, verrs[0].Field())
	}
	return err
}

// Decode reads one product body from r. An empty body decodes to an empty
// input so that it fails validation rather than parsing.
func (v *Validator) Decode(r io.Reader) (Fields, error) {
	var in ProductInput
	if err := json.NewDecoder(r).Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		return Fields{}, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if err := v.Validate(in); err != nil {
		return Fields{}, err
	}
	return in.Fields(), nil
}

type ctxKey string

const fieldsKey ctxKey = "product-fields"

func withFields(ctx context.Context, f Fields) context.Context {
	return context.WithValue(ctx, fieldsKey, f)
}

func FieldsFromContext(ctx context.Context) (Fields, bool) {
	f, ok := ctx.Value(fieldsKey).(Fields)
	return f, ok
}

// validateBody is the validation gate: it decodes and checks the body and
// hands the result to the next stage through the request context.
func (s *Server) validateBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		f, err := s.validator().Decode(r.Body)
		switch {
		case errors.Is(err, ErrMissingFields):
			kit.WriteError(w, http.StatusBadRequest, msgMissingFields)
			return
		case errors.Is(err, ErrInvalidBody):
			kit.WriteError(w, http.StatusBadRequest, msgInvalidBody)
			return
		case err != nil:
			s.logError(r, "validate product failed", err)
			kit.WriteError(w, http.StatusInternalServerError, msgInternal)
			return
		}

		next.ServeHTTP(w, r.WithContext(withFields(r.Context(), f)))
	})
}
