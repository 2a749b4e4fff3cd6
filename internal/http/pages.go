package httpx

import (
	"io"
	"net/http"
)

// pageShell is the minimal HTML document served for every page route. The
// admin screens are rendered client-side; the shell only has to load the
// static bundle. Serving it for unknown paths too lets the client router own
// the 404 experience.
const pageShell = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Shop Admin</title>
<link rel="stylesheet" href="/static/css/app.css">
</head>
<body>
<div id="app" data-login-route="/login"></div>
<script src="/static/js/app.js"></script>
</body>
</html>
`

// PageHandler serves the client application shell for page routes. The gate
// classified these as protected-page and deliberately let them through: the
// shell is harmless without a token, and the client session controller
// redirects unauthenticated visitors to the login route.
type PageHandler struct{}

func (PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, pageShell); err != nil {
		return
	}
}
