package model

import json "github.com/goccy/go-json"

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	TenantID               string `json:"tenant_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages         []CalculationMessage `json:"messages"`
	Mutations        []ProcessedMutation  `json:"mutations"`
	EndSituation     SituationEnvelope    `json:"end_situation"`
	InitialSituation SituationEnvelope    `json:"initial_situation"`
}

type ProcessedMutation struct {
	Mutation                  Mutation        `json:"mutation"`
	Applied                   bool            `json:"applied"`
	CalculationMessageIndexes []int           `json:"calculation_message_indexes,omitempty"`
	ForwardPatch              json.RawMessage `json:"forward_patch,omitempty"`
	BackwardPatch             json.RawMessage `json:"backward_patch,omitempty"`
}

type SituationEnvelope struct {
	MutationID    string    `json:"mutation_id,omitempty"`
	MutationIndex int       `json:"mutation_index"`
	Situation     Situation `json:"situation"`
	Summary       Summary   `json:"summary"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
