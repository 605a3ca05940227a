package home

import (
	"embed"
	"html/template"

	"github.com/bornholm/prometheustube/internal/ui"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

type PageTemplateData struct {
	ui.HeadTemplateData
	Navbar template.HTML
}
