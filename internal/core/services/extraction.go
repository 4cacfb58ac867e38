package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driven"
	"github.com/custodia-labs/staffscout/internal/logger"
	"github.com/custodia-labs/staffscout/internal/normalisers/html"
)

// ExtractionService reduces a site corpus and asks the extraction collaborator for contacts.
type ExtractionService struct {
	extractor  driven.ContactExtractor
	vocabulary []string
	maxChars   int
	log        logger.Logger
}

// NewExtractionService creates an extraction service that sends at most maxChars
// characters of reduced corpus per organization.
func NewExtractionService(extractor driven.ContactExtractor, maxChars int, log logger.Logger) *ExtractionService {
	if maxChars <= 0 {
		maxChars = domain.DefaultMaxCorpusChars
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &ExtractionService{
		extractor:  extractor,
		vocabulary: domain.ControlledVocabulary(),
		maxChars:   maxChars,
		log:        log,
	}
}

// Extract returns the candidates found for one organization.
// A collaborator error is returned; a malformed response is logged and yields an
// empty result.
func (s *ExtractionService) Extract(
	ctx context.Context,
	profile domain.OrganizationProfile,
	corpus string,
) (*domain.ExtractionResult, error) {
	req := domain.ExtractionRequest{
		OrganizationName: profile.Name,
		Corpus:           truncateRunes(html.Reduce(corpus), s.maxChars),
		Vocabulary:       s.vocabulary,
	}

	raw, err := s.extractor.Extract(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("extract contacts: %w", err)
	}

	result, skipped, err := ParseExtractionResponse(raw)
	if err != nil {
		s.log.Warn("extraction response invalid",
			zap.String("organization", profile.Name),
			zap.Error(err),
		)
		return domain.EmptyExtractionResult(), nil
	}
	if skipped > 0 {
		s.log.Warn("contact entries skipped",
			zap.String("organization", profile.Name),
			zap.Int("skipped", skipped),
		)
	}

	s.log.Debug("contacts extracted",
		zap.String("organization", profile.Name),
		zap.Int("candidates", len(result.Contacts)),
	)
	return result, nil
}

// ParseExtractionResponse validates and decodes an extraction response.
// The document must be a JSON object; a missing or null contacts field means no
// contacts, any other non-array value is an error. Entries of contacts that are
// not objects are dropped and counted in skipped. Blank nullable strings become nil.
func ParseExtractionResponse(raw string) (result *domain.ExtractionResult, skipped int, err error) {
	raw = strings.TrimSpace(raw)
	if !gjson.Valid(raw) {
		return nil, 0, fmt.Errorf("%w: not valid JSON", domain.ErrExtractionResponse)
	}

	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return nil, 0, fmt.Errorf("%w: expected a JSON object", domain.ErrExtractionResponse)
	}

	result = domain.EmptyExtractionResult()

	contacts := doc.Get("contacts")
	switch {
	case !contacts.Exists() || contacts.Type == gjson.Null:
	case contacts.IsArray():
		for _, item := range contacts.Array() {
			if !item.IsObject() {
				skipped++
				continue
			}
			result.Contacts = append(result.Contacts, domain.ContactCandidate{
				FirstName: item.Get("firstName").String(),
				LastName:  item.Get("lastName").String(),
				JobTitle:  item.Get("jobTitle").String(),
				Email:     item.Get("email").String(),
				Phone:     nullable(item.Get("phone")),
			})
		}
	default:
		return nil, 0, fmt.Errorf("%w: contacts is not an array", domain.ErrExtractionResponse)
	}

	result.SchoolPhone = nullable(doc.Get("schoolPhone"))
	result.SchoolState = nullable(doc.Get("schoolState"))

	return result, skipped, nil
}

func nullable(r gjson.Result) *string {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	return domain.NullableString(r.String())
}

// truncateRunes cuts s to at most n code points.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
