package webui

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dizitask/citadel/pkg/aggregate"
	"github.com/dizitask/citadel/pkg/iceandfire"
	"github.com/gavv/httpexpect/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, client iceandfire.Client) *httpexpect.Expect {
	s, err := NewServer(Options{
		Client:     client,
		Aggregator: aggregate.NewAggregator(client, 0),
		PageSize:   50,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)

	return httpexpect.WithConfig(httpexpect.Config{
		BaseURL:  srv.URL,
		Reporter: httpexpect.NewAssertReporter(t),
		Client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	})
}

func TestRoutes(t *testing.T) {
	e := newTestServer(t, newMockClient())

	e.GET("/").Expect().Status(http.StatusFound).Header("Location").IsEqual("/houses")
	e.GET("/healthz").Expect().Status(http.StatusOK).Body().IsEqual("OK")

	resp := e.GET("/houses").Expect().Status(http.StatusOK)
	resp.Header(echo.HeaderXRequestID).NotEmpty()
	resp.Body().Contains("House Algood")

	houses := e.GET("/api/houses").Expect().Status(http.StatusOK).JSON().Object()
	houses.Value("status").IsEqual("ready")
	houses.Value("data").Array().Length().IsEqual(2)
	houses.Value("data").Array().Value(0).Object().Value("anchor").IsEqual("house-stark-of-winterfell")

	e.GET("/houses/362").Expect().Status(http.StatusOK).Body().Contains("Jon Snow")
	e.GET("/character/583").Expect().Status(http.StatusOK).Body().Contains("Northmen")

	character := e.GET("/api/characters/583").Expect().Status(http.StatusOK).JSON().Object()
	character.Value("data").Object().Value("name").IsEqual("Jon Snow")

	e.GET("/api/houses/x").Expect().Status(http.StatusBadRequest).
		JSON().Object().Value("status").IsEqual("error")
	e.GET("/api/characters/404").Expect().Status(http.StatusNotFound)
}

func TestRoutes_Logging(t *testing.T) {
	e := newTestServer(t, newMockClient())

	e.POST("/api/logging/level").WithJSON(map[string]string{"log_level": "debug"}).
		Expect().Status(http.StatusOK).JSON().Object().Value("log_level").IsEqual("debug")
	e.GET("/api/logging").Expect().Status(http.StatusOK).
		JSON().Object().Value("log_level").IsEqual("debug")
	e.POST("/api/logging/level").WithJSON(map[string]string{"log_level": "loud"}).
		Expect().Status(http.StatusBadRequest)

	e.POST("/api/logging/level").WithJSON(map[string]string{"log_level": "info"}).
		Expect().Status(http.StatusOK)
}

// TestHouseEndToEnd runs the real REST client against a fake upstream where
// one sworn member never answers within the client timeout.
func TestHouseEndToEnd(t *testing.T) {
	var upstream *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/api/houses/362", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, `{"url":"%[1]s/api/houses/362","name":"House Stark of Winterfell","region":"The North",`+
			`"words":"Winter is Coming","swornMembers":["%[1]s/api/characters/583","%[1]s/api/characters/101","%[1]s/api/characters/209"]}`,
			upstream.URL)
	})
	mux.HandleFunc("/api/characters/583", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, `{"url":"%s/api/characters/583","name":"Jon Snow","culture":"Northmen"}`, upstream.URL)
	})
	mux.HandleFunc("/api/characters/209", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, `{"url":"%s/api/characters/209","name":"Brynden Tully"}`, upstream.URL)
	})
	mux.HandleFunc("/api/characters/101", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	})
	upstream = httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	client, err := iceandfire.NewRestClient(upstream.URL+"/api", 300*time.Millisecond)
	require.NoError(t, err)

	e := newTestServer(t, client)

	start := time.Now()
	body := e.GET("/houses/362").Expect().Status(http.StatusOK).Body()
	require.Less(t, time.Since(start), 2*time.Second, "the slow member does not hold the page past the client timeout")

	body.Contains("House Stark of Winterfell")
	body.Contains(`id="character-583"`)
	body.Contains(`id="character-209"`)
	body.NotContains(`id="character-101"`)

	detail := e.GET("/api/houses/362").Expect().Status(http.StatusOK).JSON().Object()
	detail.Value("data").Object().Value("members").Array().Length().IsEqual(2)
}
