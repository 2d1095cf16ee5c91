package reporting

import (
	"bytes"
	"fmt"
	"html/template"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/arenalabs/psxguard/pkg/report"
	htmlTempl "github.com/arenalabs/psxguard/reporting/templates"

	"github.com/skratchdot/open-golang/open"
)

// PrintHTML renders the hacked subscriber report as a static html page.
// The page is written into a directory named `psxguard-html-report` in
// the current working directory (a counter is appended when the
// directory already exists) and opened with the system browser.
func PrintHTML(dataset string, rows []report.Row) error {
	//create outFolder as our string builder
	outFolder := []byte("psxguard-html-report")
	outFolderBaseLen := len(outFolder)
	counter := 1

	//while the file exists, append the next counter
	for _, err := os.Stat(string(outFolder)); err == nil; _, err = os.Stat(string(outFolder)) {
		outFolder = outFolder[:outFolderBaseLen]
		outFolder = append(outFolder, []byte(strconv.Itoa(counter))...)
		counter++
	}
	outFolderString := string(outFolder)

	err := os.Mkdir(outFolderString, 0755)
	if err != nil {
		return err
	}

	err = os.Chdir(outFolderString)
	if err != nil {
		return err
	}

	err = writeReportPage(dataset, rows)
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	fmt.Println("[-] Wrote outputs, check " + wd + " for files")

	err = os.Chdir("..")
	if err != nil {
		return err
	}
	open.Run("./" + outFolderString + "/index.html")
	return nil
}

func writeReportPage(dataset string, rows []report.Row) error {
	f, err := os.Create("index.html")
	if err != nil {
		return err
	}
	defer f.Close()

	err = ioutil.WriteFile("style.css", htmlTempl.CSStempl, 0644)
	if err != nil {
		return err
	}

	templ := htmlTempl.HackedTempl
	if len(rows) == 0 {
		templ = htmlTempl.EmptyTempl
	}

	out, err := template.New("index.html").Parse(templ)
	if err != nil {
		return err
	}

	w, err := getHackedWriter(rows)
	if err != nil {
		return err
	}
	return out.Execute(f, &htmlTempl.ReportingInfo{Dataset: dataset, Writer: template.HTML(w)})
}

func getHackedWriter(rows []report.Row) (string, error) {
	tmpl := "<tr><td>{{.Id}}</td><td>{{.UID}}</td><td>{{.Type}}</td><td>{{.IdPlan}}</td>" +
		"<td>{{.Enabled}}</td><td>{{.TurnOn.UTC.Format \"2006-01-02 15:04:05\"}}</td>" +
		"<td>{{printf \"%.0f\" .Traffic}}</td></tr>\n"
	out, err := template.New("Hacked").Parse(tmpl)
	if err != nil {
		return "", err
	}
	w := new(bytes.Buffer)
	for _, row := range rows {
		err := out.Execute(w, row)
		if err != nil {
			return "", err
		}
	}
	return w.String(), nil
}
