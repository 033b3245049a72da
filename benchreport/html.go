// Copyright 2026 The benchbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"os"
	"path/filepath"

	"github.com/google/safehtml/template"
)

// A CategoryReport pairs one category's summary with the file name of
// its rendered chart, relative to the report directory.
type CategoryReport struct {
	Summary Summary
	Image   string
}

const indexTmplText = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>benchmark comparison</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 1em; }
th, td { border: 1px solid #ccc; padding: 0.3em 0.7em; text-align: right; }
th:first-child, td:first-child { text-align: left; }
img { max-width: 100%; }
.nodelta { color: #888; }
</style>
</head>
<body>
<h1>benchmark comparison</h1>
{{range .}}
<h2>{{.Summary.Category}}</h2>
<table>
<tr><th>test</th>
<th>{{.Summary.OldLabel}} n</th><th>mean</th><th>median</th>
<th>{{.Summary.NewLabel}} n</th><th>mean</th><th>median</th>
<th>delta</th></tr>
{{range .Summary.Rows}}
<tr><td>{{.Test}}</td>
<td>{{.Old.N}}</td><td>{{printf "%.4g" .Old.Mean}}</td><td>{{printf "%.4g" .Old.Median}}</td>
<td>{{.New.N}}</td><td>{{printf "%.4g" .New.Mean}}</td><td>{{printf "%.4g" .New.Median}}</td>
<td{{if eq .Delta "~"}} class="nodelta"{{end}}>{{.Delta}}</td></tr>
{{end}}
</table>
<img src="{{.Image}}" alt="{{.Summary.Category}}">
{{end}}
</body>
</html>
`

var indexTmpl = template.Must(template.New("index").ParseFromTrustedTemplate(
	template.MakeTrustedTemplate(indexTmplText)))

// WriteIndex writes <dir>/index.html linking every category's chart
// and summary table, overwriting any previous report.
func WriteIndex(dir string, reports []CategoryReport) error {
	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return err
	}
	if err := indexTmpl.Execute(f, reports); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
