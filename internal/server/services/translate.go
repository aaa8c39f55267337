package services

import (
	"context"

	"github.com/dmitrijs2005/wordbridge/internal/logging"
	"github.com/dmitrijs2005/wordbridge/internal/optional"
	"github.com/dmitrijs2005/wordbridge/internal/server/translate"
)

// TranslateService forwards translation requests to the gateway.
type TranslateService struct {
	translator translate.Translator
	logger     logging.Logger
}

func NewTranslateService(t translate.Translator, logger logging.Logger) *TranslateService {
	return &TranslateService{translator: t, logger: logger.With("module", "translate")}
}

// Translate returns the translated text, or an empty value when the upstream
// answered without one. Upstream failures match common.ErrorUpstream.
func (s *TranslateService) Translate(ctx context.Context, text, target string) (optional.Value[string], error) {
	v, err := s.translator.Translate(ctx, text, target)
	if err != nil {
		s.logger.Warn(ctx, "translation failed", "target", target, "error", err)
		return optional.None[string](), err
	}
	if !v.IsPresent() {
		s.logger.Debug(ctx, "translation response carried no text", "target", target)
	}
	return v, nil
}
