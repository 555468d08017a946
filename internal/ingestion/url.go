package ingestion

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/talent-intel/internal/fetch"
	"github.com/jonathan/talent-intel/internal/logger"
)

// ErrSourceFetch is returned when a job posting URL cannot be fetched or its
// content extracted. Callers surface it and continue with empty text.
var ErrSourceFetch = fmt.Errorf("source fetch failed")

// JobTextFromURL fetches a job posting URL and returns cleaned plain text.
// When useBrowser is set and the static HTML yields too little content, it
// falls back to headless browser rendering before giving up.
func JobTextFromURL(ctx context.Context, urlStr string, useBrowser bool, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSourceFetch, err)
	}
	log.Debug("fetched job posting", zap.String("url", urlStr), zap.Int("html_bytes", len(result.HTML)))

	text, err := fetch.ExtractText(result.HTML)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSourceFetch, err)
	}

	if useBrowser && fetch.ShouldUseBrowser(text) {
		log.Debug("static content too short, rendering with headless browser",
			zap.String("url", urlStr), zap.Int("chars", len(text)))

		html, browserErr := fetch.WithBrowser(ctx, urlStr)
		if browserErr != nil {
			// Keep the static content when rendering fails
			log.Warn("browser rendering failed", zap.String("url", urlStr), zap.Error(browserErr))
		} else if rendered, exErr := fetch.ExtractText(html); exErr == nil {
			text = rendered
		}
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", fmt.Errorf("%w: no text content at %s", ErrSourceFetch, urlStr)
	}
	log.Debug("cleaned job posting", zap.String("url", urlStr), zap.Int("chars", len(cleaned)),
		zap.String("preview", logger.Truncate(cleaned, 120)))
	return cleaned, nil
}
