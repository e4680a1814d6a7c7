package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonmartinstorm/profilsnusern/internal/contact"
	"github.com/jonmartinstorm/profilsnusern/internal/content"
	"github.com/jonmartinstorm/profilsnusern/internal/format"
	"github.com/jonmartinstorm/profilsnusern/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// StateSource er det web-laget trenger fra aggregatoren.
type StateSource interface {
	State() models.State
	Start(ctx context.Context, username string)
	Subscribe() (<-chan models.State, func())
}

type Submitter interface {
	Submit(ctx context.Context, msg contact.Message) error
}

type Options struct {
	// FormEndpoint brukes som action på skjemaet når JavaScript mangler.
	FormEndpoint string
	// OriginPatterns for websocket. Tom liste godtar bare samme origin.
	OriginPatterns []string
	// Now kan overstyres i tester.
	Now func() time.Time
}

// Server er presentasjonsskallet rundt aggregatoren.
type Server struct {
	ctx     context.Context
	states  StateSource
	relay   Submitter
	site    content.Site
	opts    Options
	handler *gin.Engine
}

// NewServer bygger rutene. ctx er levetiden til kjøringer startet via
// POST /api/username.
func NewServer(ctx context.Context, states StateSource, relay Submitter, site content.Site, opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Server{ctx: ctx, states: states, relay: relay, site: site, opts: opts}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.SetHTMLTemplate(template.Must(template.New("").Funcs(s.funcs()).ParseFS(templatesFS, "templates/*.html")))

	r.GET("/", s.handleIndex)
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/api/snapshot", s.handleSnapshot)
	r.POST("/api/username", s.handleUsername)
	r.POST("/contact", s.handleContact)
	r.GET("/ws", s.handleWS)

	s.handler = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) funcs() template.FuncMap {
	return template.FuncMap{
		"monthYear":   format.MonthYear,
		"truncate":    format.Truncate,
		"topics":      format.TopicPreview,
		"yearsActive": func(t time.Time) int { return format.YearsActive(t, s.opts.Now()) },
		"currentYear": func() int { return s.opts.Now().Year() },
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("HTTP-forespørsel",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"varighet", time.Since(start).String())
	}
}

type pageData struct {
	Site         content.Site
	State        models.State
	Profile      models.Profile
	Repos        []models.Repository
	ShowAll      bool
	TotalRepos   int
	SkillGroups  []content.SkillGroup
	FormEndpoint string
}

func (s *Server) handleIndex(c *gin.Context) {
	state := s.states.State()
	data := pageData{
		Site:         s.site,
		State:        state,
		ShowAll:      c.Query("all") == "1",
		FormEndpoint: s.opts.FormEndpoint,
	}

	if state.IsReady() {
		snap := state.Data
		data.Profile = snap.Profile
		data.TotalRepos = len(snap.Repos)
		data.Repos = snap.Featured
		if data.ShowAll {
			data.Repos = snap.Repos
		}
		data.SkillGroups = s.site.GroupSkills(snap.Technologies)
	}

	c.HTML(http.StatusOK, "index.html", data)
}

func (s *Server) handleSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, s.states.State())
}

type usernameRequest struct {
	Username string `json:"username" form:"username"`
}

func (s *Server) handleUsername(c *gin.Context) {
	var req usernameRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	username := strings.TrimSpace(req.Username)

	slog.Info("Bytter brukernavn", "username", username)
	s.states.Start(s.ctx, username)
	c.JSON(http.StatusAccepted, models.Loading(username))
}

// contactSentEvent tømmer skjemaet via hx-on når meldingen er sendt.
const contactSentEvent = "contact-sent"

var missingFieldsNotification = contact.Notification{
	Success:     false,
	Title:       contact.FailureNotification.Title,
	Description: "Please fill in your name, email, subject and message.",
}

func (s *Server) handleContact(c *gin.Context) {
	var msg contact.Message
	if err := c.ShouldBind(&msg); err != nil {
		s.respondContact(c, http.StatusBadRequest, missingFieldsNotification)
		return
	}

	err := s.relay.Submit(c.Request.Context(), msg)
	switch {
	case errors.Is(err, contact.ErrMissingFields):
		s.respondContact(c, http.StatusBadRequest, missingFieldsNotification)
	case err != nil:
		slog.Error("Kontaktskjema feilet", "error", err)
		s.respondContact(c, http.StatusBadGateway, contact.FailureNotification)
	default:
		c.Header("HX-Trigger", contactSentEvent)
		s.respondContact(c, http.StatusOK, contact.SuccessNotification)
	}
}

// respondContact gir JSON til JSON-klienter og et HTML-fragment ellers.
// Fragmentet sendes alltid med 200 slik at det byttes inn på siden.
func (s *Server) respondContact(c *gin.Context, status int, n contact.Notification) {
	if c.ContentType() == gin.MIMEJSON || c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(status, n)
		return
	}
	c.HTML(http.StatusOK, "notification.html", n)
}
