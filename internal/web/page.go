package web

import (
	"io"
	"net/http"

	"baseconv/internal/domain"
)

const pageStyle = `
body{margin:0;min-height:100vh;display:flex;align-items:center;justify-content:center;
font-family:system-ui,sans-serif;background:linear-gradient(135deg,#eff6ff,#fff)}
.widget{width:100%;max-width:28rem;background:#fff;border:1px solid #dbeafe;border-radius:1rem;
padding:2rem;box-shadow:0 10px 15px -3px rgba(0,0,0,.1)}
.widget>*+*{margin-top:1.25rem}
h1{margin:0;text-align:center;color:#1d4ed8;font-weight:600}
label{display:block;color:#2563eb;font-size:.875rem}
.input{position:relative}
.input input{box-sizing:border-box;width:100%;padding:.5rem 2.5rem .5rem 1rem;border-radius:.5rem;
border:1px solid #bfdbfe;background:#eff6ff}
.input.invalid input{border-color:#f87171}
.badge{position:absolute;right:.75rem;top:.6rem;font-size:.75rem;color:#3b82f6}
.status{font-size:.75rem;color:#3b82f6;min-height:1rem}
.status .error{color:#dc2626}
.selectors{display:flex;gap:.75rem;align-items:center}
.selectors select{flex:1;padding:.5rem;border-radius:.5rem;border:1px solid #bfdbfe;background:#eff6ff}
button{cursor:pointer;border:0;border-radius:.5rem}
.swap{padding:.5rem;background:#dbeafe;color:#1d4ed8}
.convert{width:100%;padding:.5rem;background:#2563eb;color:#fff}
.result:not(:empty){padding:1rem;border-radius:.5rem;background:#eff6ff;border:1px solid #bfdbfe}
.result-head{display:flex;justify-content:space-between;color:#1d4ed8;font-size:.875rem}
.copy{padding:.25rem .5rem;background:#dbeafe;color:#1d4ed8}
.result-value{font-size:1.125rem;font-weight:600;color:#1e40af;word-break:break-all;margin:.25rem 0}
.result-base{font-size:.75rem;color:#3b82f6;margin:0}
`

// serveStyle serves the page stylesheet.
func serveStyle(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = io.WriteString(w, pageStyle)
}

// labelFor returns the short label shown next to the input, e.g. "HEX".
func labelFor(bases []domain.BaseDescriptor, id domain.Base) string {
	for _, b := range bases {
		if b.ID == id {
			return b.Label
		}
	}
	return id.String()
}
