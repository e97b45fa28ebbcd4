package handler

import "net/http"

// HandleRoot handles GET / requests with a permanent redirect to the docs.
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/docs", http.StatusMovedPermanently)
}

const docsPage = `<!DOCTYPE html>
<html>
<head><title>carstock API</title></head>
<body>
<h1>carstock API</h1>
<p>All /car_models and /users routes require an <code>Authorization: Bearer</code> token from <code>POST /token</code>.</p>
<ul>
<li>POST /token &mdash; form-encoded username/password, returns access_token</li>
<li>GET /users/me/ &mdash; current user</li>
<li>GET /car_models/ &mdash; list (limit, sort_by, descending)</li>
<li>POST /car_models/ &mdash; create</li>
<li>GET /car_models/{id} &mdash; fetch</li>
<li>PUT /car_models/{id} &mdash; full update</li>
<li>DELETE /car_models/{id} &mdash; delete</li>
<li>POST /car_models/{id}/image/ &mdash; upload image (multipart field "file")</li>
<li>PUT /car_models/{id}/image/ &mdash; replace image</li>
<li>DELETE /car_models/{id}/image/ &mdash; clear image reference</li>
</ul>
</body>
</html>
`

// HandleDocs handles GET /docs requests with a minimal API reference.
func HandleDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(docsPage))
}
