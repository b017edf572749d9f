package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"medical-report-analyzer/internal/domain"
	apperrors "medical-report-analyzer/pkg/errors"
)

// RetryPolicy is the fixed-delay retry applied to model calls. No backoff,
// no jitter: a failed attempt waits Delay and tries again until
// MaxAttempts is reached.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// MedicalReportAnalyzer owns the prompt, the retry policy and the
// fallback. Analyze never fails outward: once extraction has succeeded
// the caller always gets a non-empty analysis string.
type MedicalReportAnalyzer struct {
	model  domain.ModelClient
	cache  domain.AnalysisCache
	logger domain.Logger
	policy RetryPolicy

	// sleep is swapped out in tests to assert retry timing.
	sleep func(time.Duration)
}

// NewReportAnalyzer creates the analysis orchestrator
func NewReportAnalyzer(model domain.ModelClient, cache domain.AnalysisCache, logger domain.Logger, policy RetryPolicy) *MedicalReportAnalyzer {
	return &MedicalReportAnalyzer{
		model:  model,
		cache:  cache,
		logger: logger,
		policy: policy,
		sleep:  time.Sleep,
	}
}

// Analyze submits the extracted text to the model, retrying provider
// failures with a fixed delay. When all attempts are exhausted, or the
// failure is not a provider error, it degrades to the deterministic
// fallback message. Successful model responses are cached by content
// hash; fallback responses are not, so a recovered model is consulted
// again for the same document.
func (a *MedicalReportAnalyzer) Analyze(ctx context.Context, doc *domain.ExtractedDocument) string {
	key := cacheKey(doc.Text)
	if cached, ok := a.cache.Get(key); ok {
		a.logger.Debug("Analysis served from cache", "key", key[:12])
		return cached
	}

	prompt := analysisPrompt + "\n\n" + doc.Text

	for attempt := 1; attempt <= a.policy.MaxAttempts; attempt++ {
		analysis, err := a.model.Complete(ctx, prompt)
		if err == nil {
			a.cache.Put(key, analysis)
			return analysis
		}

		a.logger.Warn("Model call failed", "attempt", attempt, "max_attempts", a.policy.MaxAttempts, "error", err)

		if !apperrors.IsType(err, apperrors.ErrorTypeProvider) {
			break
		}
		if attempt < a.policy.MaxAttempts {
			a.sleep(a.policy.Delay)
		}
	}

	a.logger.Info("Model unavailable, serving fallback analysis", "words", doc.WordCount())
	return fallbackAnalysis(doc.WordCount())
}

// cacheKey hashes the prompt version together with the document text so
// identical content maps to the same entry across requests.
func cacheKey(text string) string {
	h := sha256.Sum256([]byte(promptVersion + "\x00" + text))
	return hex.EncodeToString(h[:])
}

// fallbackAnalysis is the availability guarantee: a deterministic,
// non-empty degraded message built purely from local statistics.
func fallbackAnalysis(wordCount int) string {
	return fmt.Sprintf(`🔄 Fallback Analysis Mode (AI Service Temporarily Unavailable)

**Document Statistics:**
- Type: Medical document
- Words: Approximately %d
- Status: Preliminary Review

**Basic Observations:**
The document appears to contain medical information. Due to temporary technical limitations,
a full AI-powered analysis is not available at this moment.

**Recommended Actions:**
1. Retry analysis in a few minutes when AI service is restored
2. For urgent matters, consult a healthcare professional directly
3. Review the document manually for time-sensitive findings

**Note:** This is a simplified analysis. For comprehensive evaluation including differential
diagnosis, risk stratification, and detailed clinical correlation, please retry when the
AI service is available.`, wordCount)
}
