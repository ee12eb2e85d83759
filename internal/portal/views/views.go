package views

import (
	"embed"
	"html/template"
	"io"

	"github.com/pkg/errors"

	"github.com/truvote/portal/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	PageLanding    = "landing"
	PageSignIn     = "signin"
	PageOverview   = "overview"
	PageVoters     = "voters"
	PageCandidates = "candidates"
	PageConduct    = "conduct"
	PageVoteCast   = "votecast"
	PageSuccess    = "success"
)

type NavLink struct {
	Label  string
	Path   string
	Active bool
}

// Page is what every template receives, Data holds the page specific part.
type Page struct {
	Title      string
	Session    session.Session
	Nav        []NavLink
	Error      string
	ElectionID string
	Data       any
}

//go:generate mockery --with-expecter --name Renderer
type Renderer interface {
	Render(w io.Writer, page string, data Page) error
}

type templateRenderer struct {
	templates map[string]*template.Template
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
	}
}

func NewRenderer() (*templateRenderer, error) {
	pages := []string{
		PageLanding, PageSignIn, PageOverview, PageVoters,
		PageCandidates, PageConduct, PageVoteCast, PageSuccess,
	}
	r := &templateRenderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tpl, err := template.New("layout.html").
			Funcs(funcs()).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "unable to parse template %s", page)
		}
		r.templates[page] = tpl
	}
	return r, nil
}

func (r *templateRenderer) Render(w io.Writer, page string, data Page) error {
	tpl, ok := r.templates[page]
	if !ok {
		return errors.Errorf("unknown page %q", page)
	}
	if err := tpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		return errors.Wrapf(err, "unable to render page %s", page)
	}
	return nil
}
