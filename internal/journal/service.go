package journal

import (
	"github.com/cleared-dev/sieread/internal/id"
	"github.com/cleared-dev/sieread/internal/model"
)

// Service provides queries over the verifications of one ledger file.
type Service struct {
	verifications []model.Verification
}

// NewService creates a journal Service. Verifications keep file order.
func NewService(verifications []model.Verification) *Service {
	return &Service{verifications: verifications}
}

// All returns all verifications in file order.
func (s *Service) All() []model.Verification {
	return s.verifications
}

// Find returns the first verification with the given id, e.g. "A-12".
func (s *Service) Find(verID string) (model.Verification, error) {
	serie, number, err := id.ParseVerificationID(verID)
	if err != nil {
		return model.Verification{}, err
	}
	for _, v := range s.verifications {
		if v.Serie == serie && v.Number == number {
			return v, nil
		}
	}
	return model.Verification{}, &NotFoundError{ID: verID}
}

// BySerie returns the verifications in a serie.
func (s *Service) BySerie(serie string) []model.Verification {
	var result []model.Verification
	for _, v := range s.verifications {
		if v.Serie == serie {
			result = append(result, v)
		}
	}
	return result
}

// ByAccount returns the verifications with at least one posting to account.
func (s *Service) ByAccount(account uint32) []model.Verification {
	var result []model.Verification
	for _, v := range s.verifications {
		if v.Touches(account) {
			result = append(result, v)
		}
	}
	return result
}

// Series returns the distinct series in order of first appearance.
func (s *Service) Series() []string {
	seen := make(map[string]bool)
	var series []string
	for _, v := range s.verifications {
		if !seen[v.Serie] {
			seen[v.Serie] = true
			series = append(series, v.Serie)
		}
	}
	return series
}

// NotFoundError is returned by Find when no verification matches.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "verification " + e.ID + " not found"
}
