package output

import (
	"html/template"
	"io"
	"time"

	"github.com/3ajes/URL/internal/model"
	"github.com/3ajes/URL/internal/util"
)

// VerdictView is one category badge with its display title resolved.
type VerdictView struct {
	Title   string
	Status  model.Status
	Message string
}

// ResultView is used by the HTML template with pre-computed fields.
type ResultView struct {
	Index       int
	Input       string
	Host        string
	Score       int
	Label       model.Label
	Title       string
	Description string
	Tier        string
	Verdicts    []VerdictView
	Trace       []model.TraceEvent
	PrivateHost bool
	DurationMs  int64
}

// PageData provides the full context for the HTML report.
type PageData struct {
	Title       string
	GeneratedAt time.Time
	Summary     Summary
	Results     []ResultView
}

// BuildResultView converts a Report into a ResultView for HTML rendering.
func BuildResultView(idx int, rep model.Report) ResultView {
	res := rep.Result
	verdicts := make([]VerdictView, 0, 4)
	for _, c := range model.Categories() {
		v := res.Verdicts[c]
		verdicts = append(verdicts, VerdictView{Title: categoryTitles[c], Status: v.Status, Message: v.Message})
	}
	return ResultView{
		Index:       idx,
		Input:       res.Input,
		Host:        res.Host,
		Score:       res.Score,
		Label:       res.Label,
		Title:       LabelTitle(res.Label),
		Description: LabelDescription(res.Label),
		Tier:        Tier(res.Score),
		Verdicts:    verdicts,
		Trace:       append([]model.TraceEvent(nil), rep.Trace...),
		PrivateHost: res.Host != "" && util.IsInternalHost(res.Host),
		DurationMs:  rep.DurationMs,
	}
}

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"formatTime": func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
}).Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
:root { color-scheme: light dark; }
body { font-family: system-ui, -apple-system, Segoe UI, Roboto, sans-serif; margin: 24px; background:#fafafa; color:#111; }
header { margin-bottom: 24px; }
h1 { font-size: 26px; margin: 0 0 8px; }
.section { border:1px solid #e5e7eb; border-radius:16px; padding:16px 20px; margin-bottom:18px; background:#fff; box-shadow:0 1px 2px rgba(15,23,42,0.08); }
h2 { font-size:20px; margin:0 0 12px; }
.meta { color:#6b7280; font-size:12px; }
.summary-grid { display:grid; gap:12px; grid-template-columns: repeat(auto-fit,minmax(160px,1fr)); }
.summary-card { padding:12px; border-radius:12px; border:1px solid #cbd5f5; position:relative; background:linear-gradient(180deg,#eef2ff,#fff); }
.summary-card .badge { position:absolute; top:12px; right:12px; padding:2px 10px; border-radius:999px; background:#4f46e5; color:#fff; font-size:12px; }
.result { display:flex; gap:24px; align-items:flex-start; border-top:1px solid #e5e7eb; padding-top:16px; margin-top:16px; }
.result:first-of-type { border-top:none; padding-top:0; margin-top:0; }
.ring { --p:0; position:relative; width:120px; height:120px; border-radius:50%; flex:none; display:grid; place-items:center;
  background: conic-gradient(var(--ring-color) calc(var(--p)*1%), #e5e7eb 0); transition: background 0.8s ease; }
.ring::before { content:""; position:absolute; width:96px; height:96px; border-radius:50%; background:#fff; }
.ring span { position:relative; font-size:28px; font-weight:700; }
.tier-safe { --ring-color:#16a34a; color:#16a34a; }
.tier-warn { --ring-color:#d97706; color:#d97706; }
.tier-danger { --ring-color:#dc2626; color:#dc2626; }
.badges { display:flex; gap:8px; flex-wrap:wrap; margin:8px 0; }
.status-badge { padding:4px 10px; border-radius:999px; font-size:12px; font-weight:600; }
.status-SAFE { background:#dcfce7; color:#166534; }
.status-WARNING { background:#fef3c7; color:#92400e; }
.status-DANGER { background:#fee2e2; color:#991b1b; }
.url { font-family: ui-monospace, SFMono-Regular, Menlo, Consolas, monospace; font-size:13px; word-break:break-all; }
.log { background:#0f172a; color:#e2e8f0; border-radius:12px; padding:12px 16px; font-family:ui-monospace,Menlo,monospace; font-size:13px; max-height:220px; overflow:auto; }
.log .info { color:#38bdf8; }
.log .warning { color:#facc15; }
.log .danger { color:#f87171; }
.log .success { color:#4ade80; }
.footer { text-align:center; font-size:12px; color:#6b7280; margin-top:24px; }
@media (prefers-color-scheme: dark) {
        body { background:#0f172a; color:#e2e8f0; }
        .section { background:#1e293b; border-color:#334155; box-shadow:none; }
        .summary-card { background:linear-gradient(180deg,#312e81,#1e293b); border-color:#4338ca; color:#e0e7ff; }
        .ring::before { background:#1e293b; }
        .meta { color:#94a3b8; }
}
</style>
<script>
document.addEventListener('DOMContentLoaded', function() {
  document.querySelectorAll('.ring').forEach(function(ring) {
    const target = Number(ring.dataset.score) || 0;
    const span = ring.querySelector('span');
    let current = 0;
    ring.style.setProperty('--p', 0);
    const step = function() {
      current = Math.min(target, current + Math.max(1, Math.round(target / 30)));
      ring.style.setProperty('--p', current);
      span.textContent = current;
      if (current < target) { requestAnimationFrame(step); }
    };
    requestAnimationFrame(step);
  });
});
</script>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <p class="meta">Generated at {{formatTime .GeneratedAt}}</p>
</header>
<section class="section">
  <h2>Summary</h2>
  <div class="summary-grid">
    <div class="summary-card"><strong>Targets</strong><span class="badge">{{.Summary.Total}}</span></div>
    <div class="summary-card"><strong>High Risk</strong><span class="badge">{{.Summary.HighRisk}}</span></div>
    <div class="summary-card"><strong>Suspicious</strong><span class="badge">{{.Summary.Suspicious}}</span></div>
    <div class="summary-card"><strong>Likely Safe</strong><span class="badge">{{.Summary.LikelySafe}}</span></div>
    <div class="summary-card"><strong>Invalid</strong><span class="badge">{{.Summary.Invalid}}</span></div>
  </div>
</section>
<section class="section">
  <h2>Results</h2>
  {{range .Results}}
  <div class="result">
    <div class="ring tier-{{.Tier}}" data-score="{{.Score}}"><span>{{.Score}}</span></div>
    <div>
      <h3 class="tier-{{.Tier}}">{{.Title}}</h3>
      <p>{{.Description}}</p>
      <p class="url">{{.Input}}</p>
      {{if .Host}}<p class="meta">Host: {{.Host}}{{if .PrivateHost}} (private address space){{end}}</p>{{end}}
      <div class="badges">
        {{range .Verdicts}}
          <span class="status-badge status-{{.Status}}">{{.Title}}: {{.Message}}</span>
        {{end}}
      </div>
      <div class="log">
        {{range .Trace}}<div class="{{.Severity}}">{{.Message}}</div>
        {{end}}
      </div>
      <p class="meta">Duration {{.DurationMs}}ms</p>
    </div>
  </div>
  {{end}}
</section>
<footer class="footer">
  Report generated at {{formatTime .GeneratedAt}} — structural heuristics only, no reputation lookups.
</footer>
</body>
</html>
`))

// RenderHTML renders the HTML report using the provided data.
func RenderHTML(w io.Writer, data PageData) error {
	return htmlTemplate.Execute(w, data)
}
