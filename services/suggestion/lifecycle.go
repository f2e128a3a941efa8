package suggestion

import (
	"context"
	"fmt"

	"clinicflow/models"
	"clinicflow/utils"

	"go.uber.org/zap"
)

// Resolve moves a pending suggestion to accepted or rejected. Expiry is
// driven by the background sweep, never by this call.
func (e *DefaultSuggestionEngine) Resolve(ctx context.Context, clientID, suggestionID, status string) error {
	if status != models.SuggestionAccepted && status != models.SuggestionRejected {
		return NewConfigError(fmt.Sprintf("cannot resolve a suggestion to %q", status))
	}
	if err := e.Suggestions.UpdateStatus(ctx, clientID, suggestionID, status); err != nil {
		return fmt.Errorf("failed to resolve suggestion %s: %w", suggestionID, err)
	}
	utils.GetLogger().Info("suggestion resolved",
		zap.String("clientID", clientID),
		zap.String("suggestionID", suggestionID),
		zap.String("status", status))
	return nil
}

// ExpireStalePending expires pending suggestions whose slot date passed
// more than graceDays ago. The grace period leaves room for back-dated
// acceptance by the front desk.
func (e *DefaultSuggestionEngine) ExpireStalePending(ctx context.Context, graceDays int) (int64, error) {
	if graceDays < 0 {
		graceDays = 0
	}
	cutoff := e.now().AddDate(0, 0, -graceDays).Format(dateLayout)
	expired, err := e.Suggestions.ExpirePendingBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to expire stale suggestions: %w", err)
	}
	if expired > 0 {
		utils.GetLogger().Info("expired stale pending suggestions",
			zap.Int64("count", expired), zap.String("cutoff", cutoff))
	}
	return expired, nil
}

// ListRosterSummary reads the roster summary through the cache.
func (e *DefaultSuggestionEngine) ListRosterSummary(ctx context.Context) ([]models.ClientSummary, error) {
	if e.Summary != nil {
		cached, err := e.Summary.Get(ctx)
		if err != nil {
			utils.GetLogger().Warn("roster summary cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	summaries, err := e.Clients.ListWithSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list client summaries: %w", err)
	}
	if e.Summary != nil {
		if err := e.Summary.Set(ctx, summaries); err != nil {
			utils.GetLogger().Warn("roster summary cache write failed", zap.Error(err))
		}
	}
	return summaries, nil
}
