package climate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrMalformedPayload is returned when the fetched document does not match
	// the monthly-variance schema.
	ErrMalformedPayload = errors.New("malformed dataset payload")
)

var validate = validator.New()

// payload mirrors the wire format. Pointer and slice fields let validation
// tell a missing key apart from a zero value.
type payload struct {
	BaseTemperature *float64        `json:"baseTemperature" validate:"required"`
	MonthlyVariance []payloadRecord `json:"monthlyVariance" validate:"required,dive"`
}

type payloadRecord struct {
	Year     *int     `json:"year" validate:"required"`
	Month    *int     `json:"month" validate:"required,min=1,max=12"`
	Variance *float64 `json:"variance" validate:"required"`
}

// DecodeDataset reads and validates a monthly-variance JSON document.
func DecodeDataset(r io.Reader) (Dataset, error) {
	var p payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Dataset{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if err := validate.Struct(p); err != nil {
		return Dataset{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	records := make([]TemperatureRecord, 0, len(p.MonthlyVariance))
	for _, r := range p.MonthlyVariance {
		records = append(records, TemperatureRecord{
			Year:     *r.Year,
			Month:    *r.Month,
			Variance: *r.Variance,
		})
	}
	return Dataset{
		BaseTemperature: *p.BaseTemperature,
		Records:         records,
	}, nil
}
