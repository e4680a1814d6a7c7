package web_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/jonmartinstorm/profilsnusern/internal/analysis"
	"github.com/jonmartinstorm/profilsnusern/internal/contact"
	"github.com/jonmartinstorm/profilsnusern/internal/content"
	"github.com/jonmartinstorm/profilsnusern/internal/models"
	"github.com/jonmartinstorm/profilsnusern/internal/web"
)

var fixedNow = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func readySnapshot() models.Snapshot {
	profile := models.Profile{
		Login:     "kari",
		Name:      "Kari Nordmann",
		Bio:       "I love data analytics",
		HtmlURL:   "https://github.com/kari",
		CreatedAt: time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	var repos []models.Repository
	for i := 0; i < 7; i++ {
		repos = append(repos, models.Repository{
			ID:        int64(i),
			Name:      fmt.Sprintf("prosjekt-%d", i),
			HtmlURL:   fmt.Sprintf("https://github.com/kari/prosjekt-%d", i),
			Stars:     i,
			Language:  "Python",
			Topics:    []string{"a", "b", "c", "d", "e"},
			UpdatedAt: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		})
	}
	return analysis.BuildSnapshot("kari", profile, repos)
}

func newServer(states web.StateSource, relay web.Submitter) http.Handler {
	return web.NewServer(context.Background(), states, relay, content.Default(), web.Options{
		FormEndpoint: "https://formspree.io/f/test",
		Now:          func() time.Time { return fixedNow },
	}).Handler()
}

func do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

var _ = Describe("GET /", func() {
	It("skal vise skjelett mens data lastes", func() {
		rec := do(newServer(newFakeStates(models.Loading("kari")), &fakeRelay{}), httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`class="skeleton"`))
		Expect(rec.Body.String()).To(ContainSubstring(`id="contact"`))
		Expect(rec.Body.String()).NotTo(ContainSubstring("Featured projects"))
	})

	It("skal vise feilpanel med meldingen ved feil", func() {
		rec := do(newServer(newFakeStates(models.Failed("kari", "User not found")), &fakeRelay{}), httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(rec.Code).To(Equal(http.StatusOK))
		body := rec.Body.String()
		Expect(body).To(ContainSubstring(`class="error-panel"`))
		Expect(body).To(ContainSubstring("User not found"))
		Expect(body).NotTo(ContainSubstring(`id="nav"`))
	})

	It("skal vise hele siden med utvalgte repos når data er klare", func() {
		rec := do(newServer(newFakeStates(models.Ready("kari", readySnapshot())), &fakeRelay{}), httptest.NewRequest(http.MethodGet, "/", nil))

		body := rec.Body.String()
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring("Kari Nordmann"))
		Expect(body).To(ContainSubstring("Featured projects"))
		Expect(strings.Count(body, `class="card"`)).To(Equal(analysis.MaxFeatured))
		Expect(body).To(ContainSubstring("Show all 7 repositories"))
		Expect(body).To(ContainSubstring("Updated Jan 2024"))
		Expect(body).To(ContainSubstring("<strong>6</strong> years on GitHub"))
		Expect(body).To(ContainSubstring("Data Analysis"))
		Expect(body).To(ContainSubstring(`action="https://formspree.io/f/test"`))
		Expect(body).To(ContainSubstring(`hx-on:contact-sent="this.reset()"`))
		Expect(body).To(ContainSubstring(`data-username="kari"`))
		Expect(body).To(ContainSubstring("© 2025 Kari Nordmann"))
		Expect(body).To(ContainSubstring("<li>a</li><li>b</li><li>c</li><li>d</li>\n"))
	})

	It("skal vise alle repos med ?all=1", func() {
		rec := do(newServer(newFakeStates(models.Ready("kari", readySnapshot())), &fakeRelay{}), httptest.NewRequest(http.MethodGet, "/?all=1", nil))

		body := rec.Body.String()
		Expect(body).To(ContainSubstring("All repositories"))
		Expect(strings.Count(body, `class="card"`)).To(Equal(7))
		Expect(body).To(ContainSubstring("Show featured"))
	})
})

var _ = Describe("API", func() {
	It("skal gi gjeldende tilstand som JSON", func() {
		rec := do(newServer(newFakeStates(models.Failed("kari", "Failed to fetch repositories")), &fakeRelay{}), httptest.NewRequest(http.MethodGet, "/api/snapshot", nil))

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(MatchJSON(`{"status":"error","username":"kari","error":"Failed to fetch repositories"}`))
	})

	It("skal starte ny kjøring ved nytt brukernavn", func() {
		states := newFakeStates(models.Ready("kari", readySnapshot()))
		req := httptest.NewRequest(http.MethodPost, "/api/username", strings.NewReader(`{"username":" ola "}`))
		req.Header.Set("Content-Type", "application/json")

		rec := do(newServer(states, &fakeRelay{}), req)

		Expect(rec.Code).To(Equal(http.StatusAccepted))
		Expect(rec.Body.String()).To(MatchJSON(`{"status":"loading","username":"ola"}`))
		Expect(states.Started()).To(Equal([]string{"ola"}))
	})

	It("skal svare ok på healthz", func() {
		rec := do(newServer(newFakeStates(models.Loading("")), &fakeRelay{}), httptest.NewRequest(http.MethodGet, "/healthz", nil))
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(Equal("ok"))
	})
})

var _ = Describe("POST /contact", func() {
	validJSON := `{"name":"Kari","email":"kari@example.com","subject":"Hei","message":"Hallo"}`

	postJSON := func(relay *fakeRelay, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return do(newServer(newFakeStates(models.Loading("")), relay), req)
	}

	It("skal gi suksessmelding som JSON", func() {
		relay := &fakeRelay{}
		rec := postJSON(relay, validJSON)

		Expect(rec.Code).To(Equal(http.StatusOK))
		var n contact.Notification
		Expect(json.Unmarshal(rec.Body.Bytes(), &n)).To(Succeed())
		Expect(n).To(Equal(contact.SuccessNotification))
		Expect(rec.Header().Get("HX-Trigger")).To(Equal("contact-sent"))
		Expect(relay.got).To(HaveLen(1))
		Expect(relay.got[0].Subject).To(Equal("Hei"))
	})

	It("skal gi feilmelding når tjenesten feiler", func() {
		rec := postJSON(&fakeRelay{err: errors.New("skjematjenesten svarte med status 500")}, validJSON)

		Expect(rec.Code).To(Equal(http.StatusBadGateway))
		Expect(rec.Header().Get("HX-Trigger")).To(BeEmpty())
		var n contact.Notification
		Expect(json.Unmarshal(rec.Body.Bytes(), &n)).To(Succeed())
		Expect(n).To(Equal(contact.FailureNotification))
	})

	It("skal avvise tomme felt med 400", func() {
		rec := postJSON(&fakeRelay{}, `{"name":"Kari"}`)

		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(rec.Body.String()).To(ContainSubstring(`"success":false`))
	})

	It("skal gi HTML-fragment for skjemapost", func() {
		form := url.Values{"name": {"Kari"}, "email": {"kari@example.com"}, "subject": {"Hei"}, "message": {"Hallo"}}
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		relay := &fakeRelay{}

		rec := do(newServer(newFakeStates(models.Loading("")), relay), req)

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Header().Get("Content-Type")).To(ContainSubstring("text/html"))
		Expect(rec.Body.String()).To(ContainSubstring("Thanks! Your message has been sent."))
		Expect(rec.Header().Get("HX-Trigger")).To(Equal("contact-sent"))
		Expect(relay.got[0].Email).To(Equal("kari@example.com"))
	})

	It("skal ikke tømme skjemaet når innsending feiler", func() {
		form := url.Values{"name": {"Kari"}, "email": {"kari@example.com"}, "subject": {"Hei"}, "message": {"Hallo"}}
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := do(newServer(newFakeStates(models.Loading("")), &fakeRelay{err: errors.New("nede")}), req)

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("Oops! Something went wrong"))
		Expect(rec.Header().Get("HX-Trigger")).To(BeEmpty())
	})
})

var _ = Describe("GET /ws", func() {
	It("skal strømme tilstander som JSON", func() {
		states := newFakeStates(models.Loading("kari"))
		ts := httptest.NewServer(newServer(states, &fakeRelay{}))
		defer ts.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
		Expect(err).NotTo(HaveOccurred())
		defer conn.Close(websocket.StatusNormalClosure, "")

		var got models.State
		Expect(wsjson.Read(ctx, conn, &got)).To(Succeed())
		Expect(got).To(Equal(models.Loading("kari")))

		states.subs <- models.Failed("kari", "User not found")
		Expect(wsjson.Read(ctx, conn, &got)).To(Succeed())
		Expect(got).To(Equal(models.Failed("kari", "User not found")))
	})
})
