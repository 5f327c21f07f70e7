// Command reportpdf turns generated answers into paginated PDF reports.
//
// Prompts are sent to an OpenAI-compatible chat endpoint (or text is read
// from a file or stdin), an embedded Markdown table is extracted when
// present, and the result is written as a timestamped PDF.
//
//	reportpdf generate --config report.yaml "List each student's scores"
//	reportpdf generate --input answer.txt --out ./reports
package main

func main() {
	Execute()
}
