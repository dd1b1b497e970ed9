package gift

import "github.com/gulzeynep/GiftCapsule-web/internal/domain"

// CreateInput holds the parameters for sending a gift. Nil pointers mean the
// field was absent from the request.
type CreateInput struct {
	SenderName     *string
	RecipientName  *string
	RecipientEmail *string
	CardTemplate   *string
	Message        *string
}

// Validate reports every absent required field, in request order.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	required := []struct {
		name  string
		value *string
	}{
		{"sender_name", i.SenderName},
		{"recipient_name", i.RecipientName},
		{"recipient_email", i.RecipientEmail},
		{"card_template", i.CardTemplate},
		{"message", i.Message},
	}
	for _, f := range required {
		if f.value == nil {
			errs = append(errs, domain.FieldError{Field: f.name, Message: domain.MsgMissingField})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
