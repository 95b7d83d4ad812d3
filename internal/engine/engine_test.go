package engine

import (
	"context"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"inheritance-engine/internal/model"
	"inheritance-engine/internal/snapshot"
)

func baseRequest(mutations ...model.Mutation) *model.CalculationRequest {
	family := model.NewFamily()
	family.Spouse.Status = model.StatusAlive
	family.Father.Status = model.StatusAlive
	family.Children = []model.Person{
		{ID: "c1", Name: "Amy", Gender: model.GenderFemale, Status: model.StatusAlive},
		{ID: "c2", Name: "Ben", Gender: model.GenderMale, Status: model.StatusAlive},
	}
	return &model.CalculationRequest{
		TenantID: "test-tenant",
		Situation: model.Situation{
			Family: family,
			Assets: []model.Asset{
				{ID: "cash", Type: model.AssetCash, Amount: 30_000_000},
				{ID: "house", Type: model.AssetProperty, Amount: 20_000_000},
			},
		},
		CalculationInstructions: model.CalculationInstructions{Mutations: mutations},
	}
}

func mutation(id, name, props string) model.Mutation {
	return model.Mutation{
		MutationID:             id,
		MutationDefinitionName: name,
		ActualAt:               "2026-01-01",
		MutationProperties:     json.RawMessage(props),
	}
}

func findAsset(sit model.Situation, id string) *model.Asset {
	for i := range sit.Assets {
		if sit.Assets[i].ID == id {
			return &sit.Assets[i]
		}
	}
	return nil
}

func TestProcessWithoutMutations(t *testing.T) {
	resp := New(nil, nil).Process(context.Background(), baseRequest())

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationMetadata.TenantID != "test-tenant" {
		t.Fatalf("expected tenant_id test-tenant, got %s", resp.CalculationMetadata.TenantID)
	}
	if len(resp.CalculationResult.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(resp.CalculationResult.Messages))
	}

	sum := resp.CalculationResult.EndSituation.Summary
	if sum.Tax.Tax != 2_864_000 {
		t.Fatalf("expected tax 2864000, got %d", sum.Tax.Tax)
	}
	if len(sum.Heirs) != 3 {
		t.Fatalf("expected 3 heirs, got %d", len(sum.Heirs))
	}
	for _, h := range sum.Heirs {
		if h.ShareLabel != "1/3" {
			t.Fatalf("expected share 1/3 for %s, got %s", h.ID, h.ShareLabel)
		}
		if h.ID == model.FatherID {
			t.Fatal("father must not appear while children inherit")
		}
	}
	if resp.CalculationResult.EndSituation.MutationIndex != -1 {
		t.Fatalf("expected mutation_index -1, got %d", resp.CalculationResult.EndSituation.MutationIndex)
	}
}

func TestProcessPlacementRules(t *testing.T) {
	req := baseRequest(
		mutation("m1", "move_asset", `{"asset_id": "house", "target": "c1"}`),
		mutation("m2", "delete_asset", `{"asset_id": "house"}`),
		mutation("m3", "move_asset", `{"asset_id": "cash", "target": "father"}`),
		mutation("m4", "move_asset", `{"asset_id": "cash", "target": "c2_child_0"}`),
	)

	resp := New(nil, nil).Process(context.Background(), req)

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	msgs := resp.CalculationResult.Messages
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Code != "DELETE_REJECTED" || msgs[1].Code != "PLACEMENT_REJECTED" {
		t.Fatalf("unexpected codes %s, %s", msgs[0].Code, msgs[1].Code)
	}

	processed := resp.CalculationResult.Mutations
	wantApplied := []bool{true, false, false, true}
	for i, p := range processed {
		if p.Applied != wantApplied[i] {
			t.Fatalf("mutation %d: expected applied=%v", i, wantApplied[i])
		}
	}
	if len(processed[0].ForwardPatch) == 0 || string(processed[0].ForwardPatch) == "[]" {
		t.Fatal("expected forward patch for applied move")
	}

	end := resp.CalculationResult.EndSituation
	if end.MutationID != "m4" || end.MutationIndex != 3 {
		t.Fatalf("end_situation should reference last applied mutation, got %s/%d", end.MutationID, end.MutationIndex)
	}
	house := findAsset(end.Situation, "house")
	if house == nil || house.Location.String() != "c1" {
		t.Fatal("house should remain allocated to c1")
	}
	if cash := findAsset(end.Situation, "cash"); cash.Location.String() != "c2_child_0" {
		t.Fatalf("cash should sit in c2's child slot, got %s", cash.Location)
	}

	sum := end.Summary
	if !sum.AllocationStarted {
		t.Fatal("expected allocation started")
	}
	for _, a := range sum.Allocations {
		switch a.HeirID {
		case "c1":
			if a.UnderReserved {
				t.Fatal("c1 received more than the reserved amount")
			}
		case "c2":
			if !a.UnderReserved || a.ExtendedReceived != 30_000_000 {
				t.Fatalf("c2 should be under-reserved with extended 30000000, got %+v", a)
			}
		}
	}
}

func TestProcessAddAsset(t *testing.T) {
	req := baseRequest(
		mutation("m1", "add_asset", `{"type": "cash", "amount": "0"}`),
		mutation("m2", "add_asset", `{"type": "stock", "amount": 1.5, "unit": "ten_thousand", "name": "ETF"}`),
		mutation("m3", "add_asset", `{"type": "gold", "amount": 10}`),
	)

	resp := New(nil, nil).Process(context.Background(), req)

	msgs := resp.CalculationResult.Messages
	if len(msgs) != 2 || msgs[0].Code != "INVALID_AMOUNT" || msgs[1].Code != "INVALID_ASSET_TYPE" {
		t.Fatalf("unexpected messages %+v", msgs)
	}

	assets := resp.CalculationResult.EndSituation.Situation.Assets
	if len(assets) != 3 {
		t.Fatalf("expected 3 assets, got %d", len(assets))
	}
	if assets[1].Name != "ETF" || assets[1].Amount != 15_000 || !assets[1].Location.IsPool() {
		t.Fatalf("expected ETF of 15000 sorted after cash, got %+v", assets[1])
	}
}

func TestProcessFamilyEditReturnsAssets(t *testing.T) {
	req := baseRequest(
		mutation("m1", "move_asset", `{"asset_id": "cash", "target": "c2"}`),
		mutation("m2", "set_person_status", `{"person_id": "c2", "status": "deceased"}`),
		mutation("m3", "add_sibling", `{"gender": "female"}`),
	)

	resp := New(nil, nil).Process(context.Background(), req)

	msgs := resp.CalculationResult.Messages
	if len(msgs) != 1 || msgs[0].Code != "ASSETS_RETURNED_TO_POOL" {
		t.Fatalf("unexpected messages %+v", msgs)
	}
	if !resp.CalculationResult.Mutations[1].Applied {
		t.Fatal("status change should be applied")
	}

	end := resp.CalculationResult.EndSituation
	if !findAsset(end.Situation, "cash").Location.IsPool() {
		t.Fatal("cash should be back in the pool")
	}
	if len(end.Summary.Heirs) != 2 {
		t.Fatalf("expected spouse and c1, got %d heirs", len(end.Summary.Heirs))
	}
	sib := end.Situation.Family.Siblings
	if len(sib) != 1 || sib[0].Name != "Sibling 1" {
		t.Fatalf("expected default sibling name, got %+v", sib)
	}
}

func TestProcessUnknownMutation(t *testing.T) {
	req := baseRequest(
		mutation("m1", "reset_allocation", `{}`),
		mutation("m2", "disinherit", `{}`),
		mutation("m3", "reset_allocation", `{}`),
	)

	resp := New(nil, nil).Process(context.Background(), req)

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if len(resp.CalculationResult.Mutations) != 2 {
		t.Fatalf("expected 2 processed mutations, got %d", len(resp.CalculationResult.Mutations))
	}
	if resp.CalculationResult.Messages[0].Code != "UNKNOWN_MUTATION" {
		t.Fatalf("expected UNKNOWN_MUTATION, got %s", resp.CalculationResult.Messages[0].Code)
	}
	if resp.CalculationResult.EndSituation.MutationID != "m1" {
		t.Fatalf("end_situation should reference last applied mutation")
	}
}

func TestProcessInvalidProperties(t *testing.T) {
	req := baseRequest(mutation("m1", "move_asset", `"nope"`))

	resp := New(nil, nil).Process(context.Background(), req)

	msgs := resp.CalculationResult.Messages
	if len(msgs) != 1 || msgs[0].Level != model.LevelCritical || msgs[0].Code != "INVALID_PROPERTIES" {
		t.Fatalf("unexpected messages %+v", msgs)
	}
	if !strings.Contains(msgs[0].Message, "mutation_properties") {
		t.Fatalf("unexpected message text %q", msgs[0].Message)
	}
}

func TestProcessReconcilesInitialSituation(t *testing.T) {
	req := baseRequest()
	req.Situation.Assets[0].Location = model.HeirLocation(model.FatherID)

	resp := New(snapshot.NewMemoryStore(4), nil).Process(context.Background(), req)

	msgs := resp.CalculationResult.Messages
	if len(msgs) != 1 || msgs[0].Code != "ASSETS_RETURNED_TO_POOL" {
		t.Fatalf("unexpected messages %+v", msgs)
	}
	if !findAsset(resp.CalculationResult.InitialSituation.Situation, "cash").Location.IsPool() {
		t.Fatal("initial situation should already be reconciled")
	}
}
