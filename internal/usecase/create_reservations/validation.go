package create_reservations

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.User == nil {
		return fmt.Errorf("%w: user is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.Slots) == 0 {
		return ErrEmptySelection
	}

	if len(req.Slots) > domain.MaxSlotsPerRequest {
		return fmt.Errorf("%w: at most %d slots per request", ErrInvalidInput, domain.MaxSlotsPerRequest)
	}

	// Один слот не может быть выбран дважды
	seen := make(map[SlotRequest]struct{}, len(req.Slots))
	for _, s := range req.Slots {
		if err := s.Time.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time %q", ErrInvalidInput, s.Time)
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("%w: slot %s %s selected twice", ErrInvalidInput, s.Room, s.Time)
		}
		seen[s] = struct{}{}
	}

	if utf8.RuneCountInString(req.Purpose) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose exceeds %d characters", ErrInvalidInput, domain.MaxPurposeLength)
	}

	if utf8.RuneCountInString(req.Organization) > domain.MaxOrganizationLength {
		return fmt.Errorf("%w: organization exceeds %d characters", ErrInvalidInput, domain.MaxOrganizationLength)
	}

	if len(req.Equipment) > domain.MaxEquipmentItems {
		return fmt.Errorf("%w: at most %d equipment items", ErrInvalidInput, domain.MaxEquipmentItems)
	}
	for _, item := range req.Equipment {
		if strings.TrimSpace(item) == "" {
			return fmt.Errorf("%w: empty equipment item", ErrInvalidInput)
		}
	}

	return nil
}
