package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brokenerd/healthcalc/internal/config"
	"github.com/brokenerd/healthcalc/pkg/health"
	"github.com/brokenerd/healthcalc/pkg/validation"
	"github.com/google/uuid"
)

const maleProfile = `{"gender":"Male","age":25,"weight_kg":70,"height":{"unit":"cm","cm":170},"activity_level":"Sedentary"}`

func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	ts := httptest.NewServer(New(cfg).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestCalculate(t *testing.T) {
	ts := newTestServer(t, nil)
	resp := post(t, ts.URL+"/api/calculate", maleProfile)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var res health.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if res.BMI.Category != health.Overweight {
		t.Errorf("category = %s, want Overweight", res.BMI.Category)
	}
	if res.Energy.TDEE != 1971 || res.Energy.TargetCalories != 1471 {
		t.Errorf("energy = %+v, want tdee 1971 target 1471", res.Energy)
	}
	if res.Plan.Goal != "Weight Loss" {
		t.Errorf("plan goal = %q, want Weight Loss", res.Plan.Goal)
	}
}

func TestCalculateUsesConfiguredPolicy(t *testing.T) {
	cfg := config.Default()
	cfg.Policy.DeficitKcal = 700
	ts := newTestServer(t, cfg)

	resp := post(t, ts.URL+"/api/calculate", maleProfile)
	var res health.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if res.Energy.TargetCalories != res.Energy.TDEE-700 {
		t.Errorf("target = %d, want tdee-700", res.Energy.TargetCalories)
	}
}

func TestCalculateInvalidProfile(t *testing.T) {
	ts := newTestServer(t, nil)
	resp := post(t, ts.URL+"/api/calculate", `{"gender":"Male","age":5,"weight_kg":0,"height":{"cm":170},"activity_level":"sedentary"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var report validation.Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("decoding report: %v", err)
	}
	if report.Valid {
		t.Error("report should be invalid")
	}
	if len(report.Errors) != 2 {
		t.Errorf("expected 2 errors (age, weight), got %v", report.Errors)
	}
}

func TestCalculateMalformedBody(t *testing.T) {
	ts := newTestServer(t, nil)
	resp := post(t, ts.URL+"/api/calculate", `{"gender": [`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestValidateEndpoint(t *testing.T) {
	ts := newTestServer(t, nil)
	resp := post(t, ts.URL+"/api/validate", maleProfile)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var report validation.Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("decoding report: %v", err)
	}
	if !report.Valid {
		t.Errorf("expected valid report, got %v", report.Errors)
	}
}

func TestPlans(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, err := http.Get(ts.URL + "/api/plans")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	var plans []health.DietPlan
	if err := json.NewDecoder(resp.Body).Decode(&plans); err != nil {
		t.Fatalf("decoding plans: %v", err)
	}
	if len(plans) != 4 {
		t.Errorf("got %d plans, want 4", len(plans))
	}
}

func TestPlanByCategory(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/api/plans/obese")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()
	var plan health.DietPlan
	if err := json.NewDecoder(resp.Body).Decode(&plan); err != nil {
		t.Fatalf("decoding plan: %v", err)
	}
	if plan.Category != health.Obese {
		t.Errorf("category = %s, want Obese", plan.Category)
	}

	missing, err := http.Get(ts.URL + "/api/plans/athletic")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", missing.StatusCode)
	}
}

func TestRequestID(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()
	if _, err := uuid.Parse(resp.Header.Get("X-Request-ID")); err != nil {
		t.Errorf("X-Request-ID %q is not a uuid", resp.Header.Get("X-Request-ID"))
	}

	want := uuid.NewString()
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set("X-Request-ID", want)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("X-Request-ID"); got != want {
		t.Errorf("X-Request-ID = %q, want %q", got, want)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	cfg := config.Default()
	cfg.Metrics.Enabled = false
	off := newTestServer(t, cfg)
	resp, err = http.Get(off.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("disabled metrics status = %d, want 404", resp.StatusCode)
	}
}
