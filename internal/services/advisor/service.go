package advisor

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/common"
	"github.com/ternarybob/consilium/internal/interfaces"
	"github.com/ternarybob/consilium/internal/models"
)

const fallbackAnswer = "I'm sorry, I couldn't process your question right now. " +
	"Please try asking about a specific symbol, price targets, risk, sectors, or the market outlook."

// Service answers free-text investment questions from the current
// recommendation set.
type Service struct {
	recommendations interfaces.RecommendationStorage
	generator       *Generator
	logger          arbor.ILogger
}

// NewService creates an advisor backed by the given recommendation
// storage and synthetic generator.
func NewService(recommendations interfaces.RecommendationStorage, generator *Generator) *Service {
	return &Service{
		recommendations: recommendations,
		generator:       generator,
		logger:          common.GetLogger(),
	}
}

// Ask classifies the question and composes an answer. It never fails:
// storage errors and panics both degrade to a fixed fallback answer
// with 0.5 confidence.
func (s *Service) Ask(ctx context.Context, question models.Question) (answer *models.Answer) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Str("question", question.Question).
				Str("panic", fmt.Sprintf("%v", r)).
				Msg("Recovered from panic while answering question")
			answer = s.fallback(question)
		}
	}()

	known, err := s.recommendations.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load recommendations for question")
		return s.fallback(question)
	}

	classification := Classify(question.Question, known)

	s.logger.Debug().
		Str("question", question.Question).
		Str("intent", string(classification.Intent)).
		Int("mentioned", len(classification.Mentioned)).
		Msg("Classified question")

	var response Response
	switch classification.Intent {
	case IntentUnknownSymbol:
		response = s.answerUnknownSymbol(classification)
	case IntentRecommendation:
		response = composeRecommendation(classification.Mentioned, known)
	case IntentPrice:
		response = composePrice(classification.Mentioned, known)
	case IntentRisk:
		response = composeRisk(classification.Mentioned, known)
	case IntentSector:
		response = composeSector(question.Question, known)
	case IntentPortfolio:
		response = composePortfolio(known)
	case IntentMarket:
		response = composeMarket(known)
	default:
		response = composeGeneral(classification.Mentioned, known)
	}

	if response.RelevantSymbols == nil {
		response.RelevantSymbols = []string{}
	}
	if response.Sources == nil {
		response.Sources = []string{}
	}

	return &models.Answer{
		Question:        question.Question,
		Answer:          response.Answer,
		RelevantSymbols: response.RelevantSymbols,
		Confidence:      response.Confidence,
		ResponseTime:    time.Now().UTC(),
		Sources:         response.Sources,
	}
}

// answerUnknownSymbol fabricates a synthetic view for the first unknown
// candidate. A candidate the generator rejects degrades to the general
// composer instead of failing.
func (s *Service) answerUnknownSymbol(classification Classification) Response {
	symbol := classification.UnknownSymbols[0]
	rec := s.generator.Generate(symbol)
	if rec == nil {
		return composeGeneral(classification.Mentioned, nil)
	}

	s.logger.Debug().
		Str("symbol", symbol).
		Str("rating", string(rec.Recommendation)).
		Msg("Generated synthetic recommendation")

	return composeSynthetic(rec)
}

func (s *Service) fallback(question models.Question) *models.Answer {
	return &models.Answer{
		Question:        question.Question,
		Answer:          fallbackAnswer,
		RelevantSymbols: []string{},
		Confidence:      0.5,
		ResponseTime:    time.Now().UTC(),
		Sources:         []string{},
	}
}
