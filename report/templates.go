// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package report

import (
	"embed"
	htmltemplate "html/template"
	"io"
	"strings"
	texttemplate "text/template"
	"time"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var (
	htmlTemplate = htmltemplate.Must(htmltemplate.ParseFS(templatesFS, "templates/report.html.tmpl"))

	markdownTemplate = texttemplate.Must(texttemplate.New("report.md.tmpl").
				Funcs(texttemplate.FuncMap{"escape": escapeMarkdown}).
				ParseFS(templatesFS, "templates/report.md.tmpl"))
)

type templateData struct {
	Title        string
	Label        string
	Date         string
	TimeUnit     string
	AbbrTimeUnit string
	Rows         []row
}

func newTemplateData(src Source, at time.Time) (templateData, error) {
	rows, err := rows(src)
	if err != nil {
		return templateData{}, err
	}

	date := at.Format(TimestampLayout)
	unit := src.TimingPrecision()
	return templateData{
		Title:        src.Label() + " " + date,
		Label:        src.Label(),
		Date:         date,
		TimeUnit:     unit.Singular(),
		AbbrTimeUnit: unit.Abbreviation(),
		Rows:         rows,
	}, nil
}

// escapeMarkdown keeps table cells from being split by a pipe
func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

type htmlFormat struct{}

func (htmlFormat) Extension() string {
	return ".html"
}

func (f htmlFormat) Write(w io.Writer, src Source) error {
	return f.writeAt(w, src, now())
}

func (htmlFormat) writeAt(w io.Writer, src Source, at time.Time) error {
	data, err := newTemplateData(src, at)
	if err != nil {
		return err
	}
	return htmlTemplate.Execute(w, data)
}

type markdownFormat struct{}

func (markdownFormat) Extension() string {
	return ".md"
}

func (f markdownFormat) Write(w io.Writer, src Source) error {
	return f.writeAt(w, src, now())
}

func (markdownFormat) writeAt(w io.Writer, src Source, at time.Time) error {
	data, err := newTemplateData(src, at)
	if err != nil {
		return err
	}
	return markdownTemplate.Execute(w, data)
}
