package server

// indexTemplate renders the aggregated feed as a single page.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>pressdeck</title>
<style>
  body { font-family: system-ui, sans-serif; margin: 0 auto; max-width: 60rem; padding: 1rem; background: #111; color: #eee; }
  a { color: #7ab7ff; text-decoration: none; }
  a:hover { text-decoration: underline; }
  header { display: flex; justify-content: space-between; align-items: baseline; border-bottom: 1px solid #333; padding-bottom: .5rem; }
  .meta { color: #888; font-size: .85rem; }
  .errors { background: #3a1d1d; border: 1px solid #703030; border-radius: 4px; padding: .5rem 1rem; margin: 1rem 0; }
  article { border-bottom: 1px solid #222; padding: 1rem 0; display: flex; gap: 1rem; }
  article img { width: 120px; height: 80px; object-fit: cover; border-radius: 4px; }
  .company { color: #f0b429; font-size: .8rem; text-transform: uppercase; letter-spacing: .05em; }
  h2 { margin: .25rem 0; font-size: 1.1rem; }
  p { margin: .25rem 0; color: #bbb; font-size: .9rem; }
</style>
</head>
<body>
<header>
  <h1>pressdeck</h1>
  <span class="meta">{{len .Companies}} companies &middot; fetched {{.FetchedAt}} &middot; <a href="/?refresh=1">refresh</a></span>
</header>
{{if .Errors}}
<div class="errors">
  {{range .Errors}}<div>{{.}}</div>{{end}}
</div>
{{end}}
{{range .Posts}}
<article>
  {{if .Image}}<img src="{{.Image}}" alt="" loading="lazy">{{end}}
  <div>
    <div class="company"><a href="{{.SourceHomepage}}">{{.Company}}</a></div>
    <h2><a href="{{.Link}}">{{.Title}}</a></h2>
    {{if .Summary}}<p>{{.Summary}}</p>{{end}}
    <span class="meta">{{.DisplayTime}}</span>
  </div>
</article>
{{else}}
<p>No posts recovered. Try <a href="/?refresh=1">refreshing</a>.</p>
{{end}}
</body>
</html>`
