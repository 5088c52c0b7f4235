package server

import (
	"html/template"
	"io"
)

// indexTemplate is the static shell served at "/". The websocket
// stream replaces #app wholesale with each pushed frame.
var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<div id="app">connecting…</div>
<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");
  ws.onmessage = function (ev) {
    document.getElementById("app").innerHTML = ev.data;
  };
  ws.onclose = function () {
    document.getElementById("app").innerHTML = "disconnected";
  };
})();
</script>
</body>
</html>
`))

func indexPage(w io.Writer, title string) error {
	return indexTemplate.Execute(w, struct{ Title string }{Title: title})
}
