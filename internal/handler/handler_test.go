package handler

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"inheritance-engine/internal/engine"
	"inheritance-engine/internal/model"
)

func do(method, path, body string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	ctx.Request.SetBodyString(body)

	New(engine.New(nil, nil), nil).Route(&ctx)
	return &ctx
}

func TestHandleCalculation(t *testing.T) {
	body := `{
		"tenant_id": "t1",
		"situation": {
			"family": {
				"spouse": {"status": "alive"},
				"father": {"status": "alive"},
				"mother": {"status": "alive"}
			},
			"assets": [{"id": "a1", "type": "cash", "amount": 1000, "location": "pool"}]
		},
		"calculation_instructions": {
			"mutations": [
				{"mutation_id": "m1", "mutation_definition_name": "move_asset", "mutation_properties": {"asset_id": "a1", "target": "mother"}}
			]
		}
	}`

	ctx := do(fasthttp.MethodPost, "/calculate", body)

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var resp model.CalculationResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	heirs := resp.CalculationResult.EndSituation.Summary.Heirs
	want := map[string]string{"spouse": "1/2", "father": "1/4", "mother": "1/4"}
	if len(heirs) != len(want) {
		t.Fatalf("expected %d heirs, got %d", len(want), len(heirs))
	}
	for _, h := range heirs {
		if want[h.ID] != h.ShareLabel {
			t.Fatalf("heir %s: expected %s, got %s", h.ID, want[h.ID], h.ShareLabel)
		}
	}

	assets := resp.CalculationResult.EndSituation.Situation.Assets
	if assets[0].Location.String() != "mother" {
		t.Fatalf("expected asset with mother, got %s", assets[0].Location)
	}
}

func TestHandleCalculationBadBody(t *testing.T) {
	ctx := do(fasthttp.MethodPost, "/calculate", "{")

	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", ctx.Response.StatusCode())
	}
}

func TestHandleCalculationWrongMethod(t *testing.T) {
	ctx := do(fasthttp.MethodGet, "/calculate", "")

	if ctx.Response.StatusCode() != fasthttp.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", ctx.Response.StatusCode())
	}
}

func TestRouteHealthAndNotFound(t *testing.T) {
	if ctx := do(fasthttp.MethodGet, "/health", ""); string(ctx.Response.Body()) != "ok" {
		t.Fatalf("expected ok, got %q", ctx.Response.Body())
	}
	if ctx := do(fasthttp.MethodGet, "/nope", ""); ctx.Response.StatusCode() != fasthttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", ctx.Response.StatusCode())
	}
}
