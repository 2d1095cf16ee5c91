package templates

import "html/template"

//ReportingInfo fills the templates listed in html/template
type ReportingInfo struct {
	Dataset string
	Writer  template.HTML
}

var header = `
<head>
<meta content="text/html;charset=utf-8" http-equiv="Content-Type">
<meta content="utf-8" http-equiv="encoding">
<link rel="stylesheet" type="text/css" href="./style.css">
</head>

<ul>
  <li><a href="./index.html">psxguard</a></li>
  <li><a href="./index.html">Viewing: {{.Dataset}}</a></li>
  <li style="float:right">
    <a href="https://github.com/arenalabs/psxguard" target="_blank">psxguard on GitHub</a>
  </li>
</ul>
`

// HackedTempl is our hacked subscriber report html template
var HackedTempl = header + `
<div class="container">
  <table>
    <tr><th>Id</th><th>UID</th><th>Type</th><th>Plan</th><th>Enabled</th><th>Turn On</th><th>Traffic</th></tr>
      {{.Writer}}
  </table>
</div>
`

// EmptyTempl is rendered when the detection run produced no report rows
var EmptyTempl = header + `
<p>
  <div class="info">No hacked subscribers were found in this dataset.</div>
</p>
`

// CSStempl is our css template sheet
var CSStempl = []byte(`p {
  margin-bottom: 1.625em;
  font-family: 'Lucida Sans', Arial, sans-serif;
}

h1 {
  color: #000;
  font-family: 'Lato', sans-serif;
  font-size: 32px;
  font-weight: 300;
  line-height: 58px;
  margin: 0 0 58px;
  text-indent: 30px;
}

ul {
  list-style-type: none;
  margin: 0;
  padding: 0;
  overflow: hidden;
  background-color: #000;
  font-family: "Arial", Helvetica, sans-serif;
}

li {
  float: left;
  border-right: 1px solid #bbb;
}

li:last-child {
  border-right: none;
}

li a {
  display: block;
  color: white;
  text-align: center;
  padding: 14px 16px;
  text-decoration: none;
}

div {
  color: #adb7bd;
  font-family: 'Lucida Sans', Arial, sans-serif;
  font-size: 16px;
  line-height: 26px;
  margin: 0;
}

li a:hover {
  background-color: #34C6CD;
}

.info {
  padding: 14px 16px;
}

table {
  border-collapse: collapse;
  margin: 14px 16px;
}

th, td {
  border: 1px solid #bbb;
  padding: 6px 10px;
  text-align: left;
  font-family: 'Lucida Sans', Arial, sans-serif;
  font-size: 14px;
  color: #333;
}

th {
  background-color: #eee;
}
`)
