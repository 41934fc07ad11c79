package notebook

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/aretw0/sheaf/pkg/header"
)

// DefaultTag is given to notes created without tags.
const DefaultTag = "未分类"

const defaultTemplate = `---
title: {{ .Title }}
tags: {{ .TagList }}
created: {{ .Created }}
---

# {{ .Title }}

{{ .TagsMarker }}

{{ range .Tags }}- {{ . }}
{{ end }}
{{ .ContentMarker }}

> 在这里开始记录你的笔记...

---

## 📚 相关链接

- 

---

## 💡 总结

`

// TemplateData is the data available to note templates.
type TemplateData struct {
	Title   string
	Tags    []string
	TagList string // tags in header form, e.g. [go, cli]
	Created string
	Seq     int
	File    string

	TagsMarker    string
	ContentMarker string
}

// DefaultTemplate returns the built-in note template.
func DefaultTemplate() *template.Template {
	return template.Must(template.New("note").Parse(defaultTemplate))
}

// LoadTemplate parses a note template from a file.
func LoadTemplate(path string) (*template.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	tmpl, err := template.New("note").Option("missingkey=error").Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", path, err)
	}
	return tmpl, nil
}

func (s *Service) templateData(file string, seq int, title string, tags []string, created string) TemplateData {
	tagsMarker, contentMarker := s.validator.Markers()
	return TemplateData{
		Title:         title,
		Tags:          tags,
		TagList:       header.FormatTags(tags),
		Created:       created,
		Seq:           seq,
		File:          file,
		TagsMarker:    tagsMarker,
		ContentMarker: contentMarker,
	}
}

func render(tmpl *template.Template, data TemplateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render note template: %w", err)
	}
	return buf.Bytes(), nil
}
