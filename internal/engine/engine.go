package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"inheritance-engine/internal/estate"
	"inheritance-engine/internal/jsonpatch"
	"inheritance-engine/internal/model"
	"inheritance-engine/internal/mutations"
	"inheritance-engine/internal/snapshot"
)

type Engine struct {
	store  snapshot.Store
	logger *zap.Logger
}

func New(store snapshot.Store, logger *zap.Logger) *Engine {
	if store == nil {
		store = snapshot.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{store: store, logger: logger}
}

// Process replays the request's mutations over its initial situation and
// returns the derived end situation. Rejected mutations are reported and
// skipped; a CRITICAL message stops the replay.
func (e *Engine) Process(ctx context.Context, req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	state := estate.New(req.Situation, estate.WithStore(e.store), estate.WithLogger(e.logger))

	allMessages := []model.CalculationMessage{}
	processedMutations := []model.ProcessedMutation{}
	outcome := model.OutcomeSuccess

	addMessage := func(m model.CalculationMessage) int {
		m.ID = len(allMessages)
		allMessages = append(allMessages, m)
		return m.ID
	}

	if released := state.Reconcile(); released > 0 {
		addMessage(model.Warning(
			"ASSETS_RETURNED_TO_POOL",
			fmt.Sprintf("%d asset(s) in the initial situation were held by non-heirs and returned to the pool", released),
		))
	}

	initial := model.SituationEnvelope{
		MutationIndex: -1,
		Situation:     state.Situation(),
		Summary:       state.Summary(ctx),
	}

	// Track last successfully applied mutation for end_situation
	lastMutationID := ""
	lastMutationIndex := -1

	for i, mut := range req.CalculationInstructions.Mutations {
		handler, ok := mutations.Get(mut.MutationDefinitionName)
		if !ok {
			id := addMessage(model.Critical("UNKNOWN_MUTATION", fmt.Sprintf("Unknown mutation: %s", mut.MutationDefinitionName)))
			processedMutations = append(processedMutations, model.ProcessedMutation{
				Mutation:                  mut,
				CalculationMessageIndexes: []int{id},
			})
			outcome = model.OutcomeFailure
			break
		}

		before := state.Situation()
		msgs, applied := handler.Execute(state, &mut)

		var msgIndexes []int
		hasCritical := false
		for _, m := range msgs {
			msgIndexes = append(msgIndexes, addMessage(m))
			if m.Level == model.LevelCritical {
				hasCritical = true
			}
		}

		processed := model.ProcessedMutation{
			Mutation:                  mut,
			Applied:                   applied && !hasCritical,
			CalculationMessageIndexes: msgIndexes,
		}
		if processed.Applied {
			fwd, bwd, err := jsonpatch.Between(before, state.Situation())
			if err != nil {
				e.logger.Warn("situation patch", zap.String("mutation_id", mut.MutationID), zap.Error(err))
			} else {
				processed.ForwardPatch = fwd
				processed.BackwardPatch = bwd
			}
			lastMutationID = mut.MutationID
			lastMutationIndex = i
		}
		processedMutations = append(processedMutations, processed)

		if hasCritical {
			outcome = model.OutcomeFailure
			break
		}
	}

	end := model.SituationEnvelope{
		MutationID:    lastMutationID,
		MutationIndex: lastMutationIndex,
		Situation:     state.Situation(),
		Summary:       state.Summary(ctx),
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	e.logger.Debug("calculation processed",
		zap.String("tenant_id", req.TenantID),
		zap.Int("mutations", len(processedMutations)),
		zap.Int("messages", len(allMessages)),
		zap.String("outcome", outcome),
		zap.Duration("elapsed", elapsed),
	)

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			TenantID:               req.TenantID,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages:         allMessages,
			Mutations:        processedMutations,
			EndSituation:     end,
			InitialSituation: initial,
		},
	}
}
