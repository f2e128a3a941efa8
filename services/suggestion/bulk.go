package suggestion

import (
	"context"
	"fmt"

	"clinicflow/models"
	"clinicflow/utils"

	"go.uber.org/zap"
)

// RunBulk drives the matcher across the given roster, one client at a time
// in input order. Sequential processing is deliberate: it bounds load on
// the shared availability store and keeps progress strictly monotonic.
// One client's failure never aborts the batch.
func (e *DefaultSuggestionEngine) RunBulk(
	ctx context.Context,
	clientIDs []string,
	requesterID string,
	cfg models.BulkConfig,
	onProgress ProgressFunc,
) ([]models.BulkGenerationResult, models.BulkSummary, error) {
	if err := ValidateConfig(cfg.SuggestionConfig, requesterID); err != nil {
		return nil, models.BulkSummary{}, err
	}
	if cfg.DedupePolicy == "" {
		cfg.DedupePolicy = models.DedupeNone
	}
	switch cfg.DedupePolicy {
	case models.DedupeNone, models.DedupeSkipClient, models.DedupeSlot:
	default:
		return nil, models.BulkSummary{}, NewConfigError(fmt.Sprintf("unknown dedupe policy %q", cfg.DedupePolicy))
	}

	logger := utils.GetLogger()
	total := len(clientIDs)
	results := make([]models.BulkGenerationResult, 0, total)
	var summary models.BulkSummary

	for i, clientID := range clientIDs {
		result := e.processClient(ctx, clientID, requesterID, cfg)
		results = append(results, result)

		switch result.Status {
		case models.BulkStatusSuccess:
			summary.Success++
			summary.TotalSuggestions += result.SuggestionsCount
		case models.BulkStatusSkipped:
			summary.Skipped++
		case models.BulkStatusError:
			summary.Errors++
			logger.Error("bulk generation: client failed",
				zap.String("clientID", clientID), zap.String("reason", result.Reason))
		}

		if onProgress != nil {
			onProgress(i+1, total)
		}
	}

	// The roster summary is stale after a run; refresh is best-effort.
	if err := e.refreshRosterSummary(ctx); err != nil {
		logger.Warn("bulk generation: roster summary refresh failed", zap.Error(err))
	}

	logger.Info("bulk generation finished",
		zap.Int("clients", total),
		zap.Int("success", summary.Success),
		zap.Int("skipped", summary.Skipped),
		zap.Int("errors", summary.Errors),
		zap.Int("suggestions", summary.TotalSuggestions))
	return results, summary, nil
}

// processClient runs the full matcher-and-persist cycle for one client and
// classifies the outcome. Panics are contained here so a single bad record
// cannot take down the batch.
func (e *DefaultSuggestionEngine) processClient(ctx context.Context, clientID, requesterID string, cfg models.BulkConfig) (result models.BulkGenerationResult) {
	result = models.BulkGenerationResult{ClientID: clientID, ClientName: clientID}
	defer func() {
		if r := recover(); r != nil {
			result.Status = models.BulkStatusError
			result.Reason = fmt.Sprintf("panic: %v", r)
		}
	}()

	if client, err := e.Clients.GetByID(ctx, clientID); err == nil {
		result.ClientName = client.Name
	}

	var pending []models.SuggestedAppointment
	if cfg.DedupePolicy != models.DedupeNone {
		var err error
		pending, err = e.Suggestions.ListPendingByClient(ctx, clientID)
		if err != nil {
			result.Status = models.BulkStatusError
			result.Reason = fmt.Sprintf("failed to load pending suggestions: %v", err)
			return result
		}
		if cfg.DedupePolicy == models.DedupeSkipClient && len(pending) > 0 {
			result.Status = models.BulkStatusSkipped
			result.Reason = ReasonPendingExist
			return result
		}
	}

	occs, reason, err := e.matchClient(ctx, clientID, cfg.SuggestionConfig, e.now())
	if err != nil {
		result.Status = models.BulkStatusError
		result.Reason = err.Error()
		return result
	}
	if reason != "" {
		result.Status = models.BulkStatusSkipped
		result.Reason = reason
		return result
	}

	if cfg.DedupePolicy == models.DedupeSlot {
		occs = dropPendingDuplicates(occs, pending)
		if len(occs) == 0 {
			result.Status = models.BulkStatusSkipped
			result.Reason = ReasonPendingExist
			return result
		}
	}

	persisted, err := e.persistCandidates(ctx, clientID, requesterID, occs)
	result.SuggestionsCount = len(persisted)
	if err != nil {
		result.Status = models.BulkStatusError
		result.Reason = err.Error()
		return result
	}

	result.Status = models.BulkStatusSuccess
	return result
}

// dropPendingDuplicates removes candidates that already exist as a pending
// suggestion for the same (date, start).
func dropPendingDuplicates(occs []occurrence, pending []models.SuggestedAppointment) []occurrence {
	if len(pending) == 0 {
		return occs
	}
	seen := make(map[string]struct{}, len(pending))
	for _, p := range pending {
		seen[fmt.Sprintf("%s/%d", p.Date, p.Start)] = struct{}{}
	}
	kept := occs[:0]
	for _, occ := range occs {
		if _, dup := seen[fmt.Sprintf("%s/%d", occ.Date, occ.Start)]; dup {
			continue
		}
		kept = append(kept, occ)
	}
	return kept
}

// refreshRosterSummary re-aggregates the roster view and re-caches it.
func (e *DefaultSuggestionEngine) refreshRosterSummary(ctx context.Context) error {
	summaries, err := e.Clients.ListWithSummary(ctx)
	if err != nil {
		return fmt.Errorf("failed to list client summaries: %w", err)
	}
	if e.Summary != nil {
		if err := e.Summary.Set(ctx, summaries); err != nil {
			return err
		}
	}
	return nil
}
