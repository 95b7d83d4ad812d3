package model

import json "github.com/goccy/go-json"

type CalculationRequest struct {
	TenantID                string                  `json:"tenant_id"`
	Situation               Situation               `json:"situation"`
	CalculationInstructions CalculationInstructions `json:"calculation_instructions"`
}

type CalculationInstructions struct {
	Mutations []Mutation `json:"mutations"`
}

type Mutation struct {
	MutationID             string          `json:"mutation_id"`
	MutationDefinitionName string          `json:"mutation_definition_name"`
	ActualAt               string          `json:"actual_at,omitempty"`
	MutationProperties     json.RawMessage `json:"mutation_properties"`
}
