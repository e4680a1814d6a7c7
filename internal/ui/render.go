package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonmartinstorm/profilsnusern/internal/format"
	"github.com/jonmartinstorm/profilsnusern/internal/models"
)

const descriptionWidth = 80

// View skriver en tilstand som terminaltekst.
type View struct {
	w      io.Writer
	styles Styles
	now    func() time.Time
}

func NewView(w io.Writer, styles Styles) *View {
	return &View{w: w, styles: styles, now: time.Now}
}

// RenderState skriver state til stdout-stilene.
func RenderState(w io.Writer, state models.State) error {
	return NewView(w, styles).Render(state)
}

func (v *View) Render(state models.State) error {
	var b strings.Builder
	switch {
	case state.IsError():
		fmt.Fprintf(&b, "%s %s\n", v.styles.Red.Render("✗ "+state.Error), v.styles.Dim.Render("("+state.Username+")"))
	case state.IsReady():
		v.renderSnapshot(&b, *state.Data)
	default:
		fmt.Fprintf(&b, "%s\n", v.styles.Dim.Render("Laster profil for "+state.Username+"..."))
	}
	_, err := io.WriteString(v.w, b.String())
	return err
}

func (v *View) renderSnapshot(b *strings.Builder, snap models.Snapshot) {
	s := v.styles
	p := snap.Profile

	var card strings.Builder
	card.WriteString(s.Green.Render(p.DisplayName()) + " " + s.Dim.Render("@"+p.Login) + "\n")
	if p.Bio != "" {
		card.WriteString(s.White.Render(p.Bio) + "\n")
	}
	for _, line := range []string{p.Location, p.Company, p.HtmlURL} {
		if line != "" {
			card.WriteString(s.Dim.Render(line) + "\n")
		}
	}
	fmt.Fprintf(&card, "%d repos · %d følgere · %d år på GitHub",
		p.PublicRepos, p.Followers, format.YearsActive(p.CreatedAt, v.now()))
	b.WriteString(s.Card.Render(card.String()) + "\n\n")

	b.WriteString(s.Cyan.Render("Utvalgte repos") + "\n")
	if len(snap.Featured) == 0 {
		b.WriteString(s.Dim.Render("  ingen") + "\n")
	}
	for _, r := range snap.Featured {
		fmt.Fprintf(b, "  %s %s\n", s.Green.Render(r.Name), s.Dim.Render(fmt.Sprintf("★ %d  ⑂ %d  %s", r.Stars, r.Forks, format.MonthYear(r.UpdatedAt))))
		if r.Description != "" {
			fmt.Fprintf(b, "    %s\n", format.Truncate(r.Description, descriptionWidth))
		}
		if topics := format.TopicPreview(r.Topics); len(topics) > 0 {
			fmt.Fprintf(b, "    %s\n", s.Dim.Render(strings.Join(topics, ", ")))
		}
	}

	b.WriteString("\n" + s.Cyan.Render("Teknologier") + "\n")
	b.WriteString("  " + strings.Join(snap.Technologies, ", ") + "\n")
}
