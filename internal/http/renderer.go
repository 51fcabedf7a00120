package httpx

import (
	"html/template"
	"net/http"
)

// pageData feeds the minimal page shell. The gateway serves server-rendered
// shells; the richer client bundle hydrates on top of them.
type pageData struct {
	Title string
	Body  string
	User  string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} - Gestão de Inventário</title>
</head>
<body>
<main>
<h1>{{.Title}}</h1>
{{if .User}}<p class="user">{{.User}}</p>{{end}}
<p>{{.Body}}</p>
</main>
</body>
</html>
`))

// renderPage writes the HTML shell with the given status.
func renderPage(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		// Headers are gone; nothing to recover here.
		return
	}
}
