package services

import (
	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driving"
)

// Ensure TitleService implements the interface.
var _ driving.TitleService = (*TitleService)(nil)

// TitleService exposes the controlled vocabulary to driving adapters.
type TitleService struct{}

// NewTitleService creates a title service.
func NewTitleService() *TitleService {
	return &TitleService{}
}

// Vocabulary returns the approved titles in match order.
func (s *TitleService) Vocabulary() []string {
	return domain.ControlledVocabulary()
}

// Standardise maps a raw job title to its canonical form.
func (s *TitleService) Standardise(raw string) (string, bool) {
	return domain.StandardiseTitle(raw)
}
