package web

// Single-page UI: the form talks to the JSON API and reloads the page after
// mutations so the server-rendered state stays the source of truth.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Funda Property Scraper</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2rem auto; color: #222; }
h1 { color: #1f77b4; }
fieldset { margin-bottom: 1rem; border: 1px solid #ddd; border-radius: 6px; }
input[type=text] { width: 28rem; max-width: 90%; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { border: 1px solid #ddd; padding: 0.4rem; text-align: left; font-size: 0.9rem; }
.status-error { color: #dc3545; }
.status-success { color: #28a745; }
#summary span { margin-right: 1.5rem; }
</style>
</head>
<body>
<h1>Funda Property Scraper</h1>

<fieldset>
<legend>Property URLs</legend>
<input type="text" id="url" placeholder="https://www.funda.nl/detail/koop/...">
<button onclick="addUrl()">Add URL</button>
<button onclick="clearUrls()">Clear All</button>
<ol>
{{range $i, $u := .URLs}}<li>{{$u}} <button onclick="removeUrl({{$i}})">remove</button></li>
{{end}}</ol>
</fieldset>

<fieldset>
<legend>Work addresses</legend>
<input type="text" id="work1" value="{{.WorkAddress1}}" placeholder="Amsterdam Centraal Station, Amsterdam"><br>
<input type="text" id="work2" value="{{.WorkAddress2}}" placeholder="Rotterdam Centraal, Rotterdam"><br>
<button onclick="saveAddresses()">Save addresses</button>
</fieldset>

<fieldset>
<legend>Run</legend>
<button onclick="scrape()">Scrape Properties</button>
<button onclick="toggleDebug()">Debug mode: {{if .Debug}}on{{else}}off{{end}}</button>
<a href="/download">Download {{.OutputFilename}}</a>
</fieldset>

<div id="summary"></div>
<div id="results"></div>

<script>
async function call(method, path, body) {
  const res = await fetch(path, {
    method: method,
    headers: {'Content-Type': 'application/json'},
    body: body ? JSON.stringify(body) : undefined,
  });
  const data = await res.json();
  if (!res.ok) { alert(data.error); throw new Error(data.error); }
  return data;
}
async function addUrl() {
  await call('POST', '/api/urls', {url: document.getElementById('url').value});
  location.reload();
}
async function removeUrl(i) { await call('DELETE', '/api/urls/' + i); location.reload(); }
async function clearUrls() { await call('DELETE', '/api/urls'); location.reload(); }
async function saveAddresses() {
  await call('POST', '/api/work-addresses', {
    work_address_1: document.getElementById('work1').value,
    work_address_2: document.getElementById('work2').value,
  });
}
async function toggleDebug() { await call('POST', '/api/debug'); location.reload(); }
async function saveCommute(i, slot, el) {
  await call('POST', '/api/commutes', {index: i, slot: slot, duration: el.value});
}
async function scrape() {
  const result = await call('POST', '/api/scrape');
  render(result);
}
async function loadResults() {
  const res = await fetch('/api/results');
  if (res.ok) { render(await res.json()); }
}
function render(result) {
  const s = result.summary;
  document.getElementById('summary').innerHTML =
    '<span>Total: ' + s.total + '</span>' +
    '<span class="status-success">Succeeded: ' + s.succeeded + '</span>' +
    '<span class="status-error">Errors: ' + s.failed + '</span>' +
    (s.avg_price_k ? '<span>Avg price: ' + Math.round(s.avg_price_k) + ' k€</span>' : '');
  let html = '<table><tr><th>address</th><th>price</th><th>m²</th><th>label</th>' +
    '<th>status</th><th>commute</th></tr>';
  result.records.forEach(function(r, i) {
    const cls = r.status === 'Success' ? 'status-success' : 'status-error';
    let commute = '';
    if (r.commute_url_1) {
      commute += '<a href="' + r.commute_url_1 + '" target="_blank">map 1</a> ' +
        '<input size="8" value="' + (r.commute_time_1 || '') + '" onchange="saveCommute(' + i + ',1,this)"> ';
    }
    if (r.commute_url_2) {
      commute += '<a href="' + r.commute_url_2 + '" target="_blank">map 2</a> ' +
        '<input size="8" value="' + (r.commute_time_2 || '') + '" onchange="saveCommute(' + i + ',2,this)">';
    }
    html += '<tr><td><a href="' + r.link + '" target="_blank">' + (r.address || '?') + '</a></td>' +
      '<td>' + (r.asking_price || '') + '</td><td>' + (r.area_m2 || '') + '</td>' +
      '<td>' + (r.energy_label || '') + '</td><td class="' + cls + '">' + r.status + '</td>' +
      '<td>' + commute + '</td></tr>';
  });
  html += '</table>';
  document.getElementById('results').innerHTML = html;
}
loadResults();
</script>
</body>
</html>
`
