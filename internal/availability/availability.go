// Package availability validates the admin-authored venue → dates mapping of an event.
package availability

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stpnv0/VenueBooker/internal/domain"
)

// Validate checks that text is a JSON object whose values are all arrays.
func Validate(text string) error {
	_, err := decode(text)
	return err
}

// Parse validates text and returns the mapping with every date rendered as a string.
func Parse(text string) (domain.AvailableDates, error) {
	raw, err := decode(text)
	if err != nil {
		return nil, err
	}

	res := make(domain.AvailableDates, len(raw))
	for venue, list := range raw {
		dates := make([]string, 0, len(list))
		for _, d := range list {
			if s, ok := d.(string); ok {
				dates = append(dates, s)
				continue
			}
			dates = append(dates, fmt.Sprint(d))
		}
		res[venue] = dates
	}

	return res, nil
}

func decode(text string) (map[string][]any, error) {
	var parsed any
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: not an object", domain.ErrValidation)
	}

	res := make(map[string][]any, len(obj))
	for venue, v := range obj {
		list, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: venue value not a list", domain.ErrValidation)
		}
		res[venue] = list
	}

	return res, nil
}
