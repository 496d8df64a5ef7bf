package oauth

import "html/template"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
      display: flex; justify-content: center; align-items: center; height: 100vh; margin: 0;
      background-color: #f5f5f5; }
    .container { text-align: center; background: white; padding: 3rem; border-radius: 8px;
      box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
    .mark { font-size: 4rem; margin-bottom: 1rem; color: {{.Color}}; }
    h1 { color: {{.Color}}; margin-bottom: 0.5rem; }
    p { color: #737373; }
  </style>
</head>
<body>
  <div class="container">
    <div class="mark">{{.Mark}}</div>
    <h1>{{.Title}}</h1>
    <p>{{.Body}}</p>
  </div>
</body>
</html>
`))

type page struct {
	Lang  string
	Title string
	Body  string
	Mark  string
	Color string
}
