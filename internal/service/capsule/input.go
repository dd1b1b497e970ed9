package capsule

import (
	"time"

	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
)

// CreateInput holds the parameters for creating a capsule. Nil pointers
// mean the field was absent from the request.
type CreateInput struct {
	CreatorEmail *string
	Title        *string
	Message      *string
	OpenDate     *string
	MediaURL     *string
}

// Validate checks presence of every required field and parses open_date.
// On success it returns the parsed open date.
func (i CreateInput) Validate() (time.Time, error) {
	var errs []domain.FieldError

	required := []struct {
		name  string
		value *string
	}{
		{"creator_email", i.CreatorEmail},
		{"title", i.Title},
		{"message", i.Message},
		{"open_date", i.OpenDate},
	}
	for _, f := range required {
		if f.value == nil {
			errs = append(errs, domain.FieldError{Field: f.name, Message: domain.MsgMissingField})
		}
	}
	if len(errs) > 0 {
		return time.Time{}, domain.NewValidationErrors(errs)
	}

	openDate, err := domain.ParseOpenDate(*i.OpenDate)
	if err != nil {
		return time.Time{}, domain.NewValidationError("open_date", "must be an ISO-8601 timestamp")
	}

	return openDate, nil
}
