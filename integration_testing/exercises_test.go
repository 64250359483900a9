//go:build integration_test

package integration_testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/2beens/gymcoach/internal/middleware"
	"github.com/2beens/gymcoach/pkg/recommend"
)

type resultResponse[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
}

func (s *IntegrationTestSuite) doRequest(method, path string, body []byte, headers map[string]string) (*http.Response, []byte) {
	req, err := http.NewRequest(method, serverEndpoint+path, bytes.NewReader(body))
	s.Require().NoError(err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, respBody
}

func (s *IntegrationTestSuite) TestAlternatives() {
	resp, body := s.doRequest(http.MethodPost, "/exercises/bench_press/alternatives", []byte(`{"limit": 3}`), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))

	var res resultResponse[[]recommend.Recommendation]
	s.Require().NoError(json.Unmarshal(body, &res))
	s.True(res.Success)
	s.Require().Len(res.Data, 3)

	var ids []string
	for _, rec := range res.Data {
		ids = append(ids, rec.Exercise.ID)
		s.NotEmpty(rec.Reason)
		s.Equal([]string{"chest"}, rec.Exercise.MainMuscles)
	}
	s.Equal([]string{"push_up", "dumbbell_fly", "cable_crossover"}, ids)
	s.InDelta(0.9, res.Data[0].FinalScore, 1e-9)
}

func (s *IntegrationTestSuite) TestAlternatives_ScheduledExercisesExcluded() {
	payload := []byte(`{"limit": 5, "scheduledExerciseIds": ["push_up"], "scheduledExerciseNames": ["Dumbbell Fly"]}`)
	resp, body := s.doRequest(http.MethodPost, "/exercises/bench_press/alternatives", payload, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))

	var res resultResponse[[]recommend.Recommendation]
	s.Require().NoError(json.Unmarshal(body, &res))

	var ids []string
	for _, rec := range res.Data {
		ids = append(ids, rec.Exercise.ID)
	}
	s.Equal([]string{"cable_crossover", "incline_bench_press"}, ids)
}

func (s *IntegrationTestSuite) TestAlternatives_Errors() {
	resp, body := s.doRequest(http.MethodPost, "/exercises/unknown_exercise/alternatives", nil, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode, string(body))

	resp, body = s.doRequest(http.MethodPost, "/exercises/bench_press/alternatives", []byte(`{"limit": 11}`), nil)
	s.Require().Equal(http.StatusBadRequest, resp.StatusCode, string(body))

	var res resultResponse[[]recommend.Recommendation]
	s.Require().NoError(json.Unmarshal(body, &res))
	s.False(res.Success)
	s.Equal(recommend.ErrInvalidLimit.Error(), res.Error)
}

func (s *IntegrationTestSuite) TestSearch() {
	resp, body := s.doRequest(http.MethodGet, "/exercises/search?q=squat", nil, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))

	var res resultResponse[[]recommend.SearchResult]
	s.Require().NoError(json.Unmarshal(body, &res))
	s.Require().Len(res.Data, 2)
	s.Equal("back_squat", res.Data[0].Exercise.ID)
	s.Equal("goblet_squat", res.Data[1].Exercise.ID)
	s.InDelta(0.5, res.Data[0].RelevanceScore, 1e-9)

	resp, body = s.doRequest(http.MethodGet, "/exercises/search?equipment=dumbbell&limit=1&offset=1", nil, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))
	res = resultResponse[[]recommend.SearchResult]{}
	s.Require().NoError(json.Unmarshal(body, &res))
	s.Require().Len(res.Data, 1)
	s.Equal("goblet_squat", res.Data[0].Exercise.ID)

	resp, _ = s.doRequest(http.MethodGet, "/exercises/search?offset=-1", nil, nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestFacets() {
	resp, body := s.doRequest(http.MethodGet, "/exercises/facets", nil, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))

	var res resultResponse[recommend.FacetValues]
	s.Require().NoError(json.Unmarshal(body, &res))
	s.True(res.Success)
	s.Subset(res.Data.TargetAreas, []string{"back", "chest", "legs"})
	s.Subset(res.Data.Equipment, []string{"barbell", "bodyweight", "cable", "dumbbell"})
	s.Subset(res.Data.Difficulties, []string{"beginner", "intermediate"})
}

func (s *IntegrationTestSuite) TestAdmin_AddAndDelete() {
	newExercise := recommend.Exercise{
		ID:              "arnold_press",
		Name:            "Arnold Press",
		Equipment:       "dumbbell",
		TargetArea:      "shoulders",
		MainMuscles:     []string{"shoulders"},
		Difficulty:      "intermediate",
		PopularityScore: 65,
	}
	payload, err := json.Marshal(newExercise)
	s.Require().NoError(err)

	// no admin token
	resp, _ := s.doRequest(http.MethodPost, "/exercises", payload, map[string]string{"Content-Type": "application/json"})
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	adminHeaders := map[string]string{
		"Content-Type":              "application/json",
		middleware.AdminTokenHeader: testAdminToken,
	}
	resp, body := s.doRequest(http.MethodPost, "/exercises", payload, adminHeaders)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, string(body))

	resp, _ = s.doRequest(http.MethodPost, "/exercises", payload, adminHeaders)
	s.Equal(http.StatusConflict, resp.StatusCode)

	resp, body = s.doRequest(http.MethodGet, "/exercises/arnold_press", nil, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))
	var stored recommend.Exercise
	s.Require().NoError(json.Unmarshal(body, &stored))
	s.Equal(newExercise.Name, stored.Name)
	s.Empty(stored.SecondaryMuscles)

	// facets were invalidated on add
	resp, body = s.doRequest(http.MethodGet, "/exercises/facets", nil, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var facets resultResponse[recommend.FacetValues]
	s.Require().NoError(json.Unmarshal(body, &facets))
	s.Contains(facets.Data.TargetAreas, "shoulders")

	resp, _ = s.doRequest(http.MethodDelete, "/exercises/arnold_press", nil, adminHeaders)
	s.Equal(http.StatusNoContent, resp.StatusCode)

	resp, _ = s.doRequest(http.MethodDelete, "/exercises/arnold_press", nil, adminHeaders)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	resp, _ = s.doRequest(http.MethodGet, "/exercises/arnold_press", nil, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestRootAndUnknown() {
	resp, body := s.doRequest(http.MethodGet, "/", nil, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("I'm OK, thanks ;)", string(body))

	resp, body = s.doRequest(http.MethodGet, "/version", nil, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("test-version-info", string(body))

	resp, _ = s.doRequest(http.MethodGet, fmt.Sprintf("/nothing-here-%d", time.Now().Unix()), nil, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}
