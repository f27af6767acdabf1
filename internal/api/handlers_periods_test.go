package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/terraincognita07/luna/internal/models"
)

func TestCreatePeriodAndList(t *testing.T) {
	app := newTestApp(t)

	response := doJSON(t, app, http.MethodPost, "/api/periods", map[string]string{
		"start_date": "2025-02-01",
		"end_date":   "2025-02-05",
		"flow":       "Heavy",
	})
	expectStatus(t, response, http.StatusCreated)

	created := models.Period{}
	decodeBody(t, response, &created)
	if created.ID == "" || created.Flow != models.FlowHeavy || created.EndDate == nil || created.EndDate.String() != "2025-02-05" {
		t.Fatalf("unexpected created period %+v", created)
	}

	response = doJSON(t, app, http.MethodGet, "/api/periods", nil)
	expectStatus(t, response, http.StatusOK)
	listed := struct {
		Periods []models.Period `json:"periods"`
	}{}
	decodeBody(t, response, &listed)
	if len(listed.Periods) != 1 || listed.Periods[0].ID != created.ID {
		t.Fatalf("unexpected periods %+v", listed.Periods)
	}
}

func TestCreatePeriodValidation(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		name    string
		payload map[string]string
		want    string
	}{
		{name: "missing start", payload: map[string]string{"flow": "light"}, want: "start_date is required"},
		{name: "bad date", payload: map[string]string{"start_date": "02/01/2025", "flow": "light"}, want: "start_date must be a YYYY-MM-DD date"},
		{name: "bad flow", payload: map[string]string{"start_date": "2025-02-01", "flow": "torrential"}, want: "invalid flow intensity"},
		{name: "end before start", payload: map[string]string{"start_date": "2025-02-05", "end_date": "2025-02-01", "flow": "light"}, want: "period end date is before start date"},
		{name: "end year typo", payload: map[string]string{"start_date": "2025-01-01", "end_date": "2225-01-01", "flow": "light"}, want: "period is longer than the maximum cycle length"},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			response := doJSON(t, app, http.MethodPost, "/api/periods", testCase.payload)
			expectStatus(t, response, http.StatusBadRequest)
			if got := readAPIError(t, response.Body); got != testCase.want {
				t.Fatalf("expected %q, got %q", testCase.want, got)
			}
		})
	}
}

func TestAddPeriodDayReusesCoveringPeriod(t *testing.T) {
	app := newTestApp(t)

	response := doJSON(t, app, http.MethodPost, "/api/periods/day", map[string]string{"date": "2025-02-01", "flow": "light"})
	expectStatus(t, response, http.StatusCreated)

	response = doJSON(t, app, http.MethodPost, "/api/periods/day", map[string]string{"date": "2025-02-03", "flow": "light"})
	expectStatus(t, response, http.StatusOK)
	payload := struct {
		Period  models.Period `json:"period"`
		Created bool          `json:"created"`
	}{}
	decodeBody(t, response, &payload)
	if payload.Created || payload.Period.StartDate.String() != "2025-02-01" {
		t.Fatalf("expected existing period to be reused, got %+v", payload)
	}
}

func TestAddPeriodDayRejectsImpossibleDate(t *testing.T) {
	app := newTestApp(t)

	response := doJSON(t, app, http.MethodPost, "/api/periods/day", map[string]string{"date": "2025-02-30", "flow": "light"})
	expectStatus(t, response, http.StatusBadRequest)
	if got := readAPIError(t, response.Body); got != "date must be a YYYY-MM-DD date" {
		t.Fatalf("unexpected error %q", got)
	}

	response = doJSON(t, app, http.MethodGet, "/api/periods", nil)
	expectStatus(t, response, http.StatusOK)
	listed := struct {
		Periods []models.Period `json:"periods"`
	}{}
	decodeBody(t, response, &listed)
	if len(listed.Periods) != 0 {
		t.Fatalf("expected no periods, got %+v", listed.Periods)
	}
}

func TestCreatePeriodRejectsMalformedJSON(t *testing.T) {
	app := newTestApp(t)

	request := strings.NewReader("{")
	response := doRaw(t, app, http.MethodPost, "/api/periods", request)
	expectStatus(t, response, http.StatusBadRequest)
	if got := readAPIError(t, response.Body); got != "invalid payload" {
		t.Fatalf("expected invalid payload, got %q", got)
	}
}
