// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format wraps rendered document bodies into container formats:
// plain text, CSV, log, XML, JSON, HTML, RTF, Markdown, and plain-text
// simulations of PDF/DOCX/XLSX. Output is deterministic for a given
// (body, type, timestamp) triple.
package format

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/dlpsmith/pkg/types"
)

// Formatter produces the final file bytes for one container format.
type Formatter func(body string, doc types.DocumentType, generated time.Time) ([]byte, error)

var formatters = map[types.ContainerFormat]Formatter{
	types.FormatTxt:  passthrough,
	types.FormatCSV:  passthrough,
	types.FormatLog:  passthrough,
	types.FormatXML:  wrapXML,
	types.FormatJSON: wrapJSON,
	types.FormatHTML: wrapHTML,
	types.FormatRTF:  wrapRTF,
	types.FormatMD:   wrapMarkdown,
	types.FormatPDF:  simulated("PDF"),
	types.FormatDOCX: simulated("DOCX"),
	types.FormatXLSX: simulated("XLSX"),
}

// Wrap encodes a document body for the given container format.
func Wrap(cf types.ContainerFormat, body string, doc types.DocumentType, generated time.Time) ([]byte, error) {
	fn, ok := formatters[cf]
	if !ok {
		return nil, fmt.Errorf("unknown container format %q", cf)
	}
	return fn(body, doc, generated)
}

// passthrough writes the body as-is. Used for txt, csv, and log output;
// the templates already produce line-oriented text for those.
func passthrough(body string, _ types.DocumentType, _ time.Time) ([]byte, error) {
	return []byte(body), nil
}

// wrapXML embeds the body verbatim in a CDATA section under a root
// element carrying type and generated attributes.
func wrapXML(body string, doc types.DocumentType, generated time.Time) ([]byte, error) {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<document type=%q generated=%q>`+"\n",
		string(doc), generated.Format(time.RFC3339))
	b.WriteString("<content><![CDATA[\n")
	b.WriteString(body)
	b.WriteString("\n]]></content>\n")
	b.WriteString("</document>\n")
	return []byte(b.String()), nil
}

// jsonDocument is the JSON container schema. The body is carried whole
// under content; metadata labels the purpose and classification.
type jsonDocument struct {
	DocumentType types.DocumentType `json:"document_type"`
	Generated    string             `json:"generated"`
	Content      string             `json:"content"`
	Metadata     jsonMetadata       `json:"metadata"`
}

type jsonMetadata struct {
	Purpose        string               `json:"purpose"`
	Classification types.Classification `json:"classification"`
}

func wrapJSON(body string, doc types.DocumentType, generated time.Time) ([]byte, error) {
	out := jsonDocument{
		DocumentType: doc,
		Generated:    generated.Format(time.RFC3339),
		Content:      body,
		Metadata: jsonMetadata{
			Purpose:        "DLP detection testing - synthetic data",
			Classification: doc.Classification(),
		},
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding JSON container: %w", err)
	}
	return append(data, '\n'), nil
}

// htmlEscaper covers &, <, > and double quote. The apostrophe is left
// unescaped; downstream test expectations depend on the current output,
// so this stays a known gap rather than getting fixed silently.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func wrapHTML(body string, doc types.DocumentType, generated time.Time) ([]byte, error) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>%s - TEST DATA</title>\n", htmlEscaper.Replace(string(doc)))
	b.WriteString("<style>body{font-family:monospace;margin:2em} .warn{background:#fdd;padding:1em;border:2px solid #c00}</style>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(`<div class="warn">SYNTHETIC TEST DATA - generated for DLP testing - contains no real information</div>` + "\n")
	fmt.Fprintf(&b, "<p>Generated: %s</p>\n", generated.Format(time.RFC3339))
	b.WriteString("<pre>\n")
	b.WriteString(htmlEscaper.Replace(body))
	b.WriteString("\n</pre>\n</body>\n</html>\n")
	return []byte(b.String()), nil
}

// rtfEscaper escapes the RTF control characters.
var rtfEscaper = strings.NewReplacer(
	`\`, `\\`,
	"{", `\{`,
	"}", `\}`,
)

// wrapRTF produces a minimal RTF document with one declared font.
// Newlines become paragraph breaks.
func wrapRTF(body string, _ types.DocumentType, _ time.Time) ([]byte, error) {
	escaped := rtfEscaper.Replace(body)
	escaped = strings.ReplaceAll(escaped, "\n", `\par `)

	var b strings.Builder
	b.WriteString(`{\rtf1\ansi\deff0{\fonttbl{\f0 Courier New;}}`)
	b.WriteString(`\f0\fs20 `)
	b.WriteString(escaped)
	b.WriteString("}")
	return []byte(b.String()), nil
}

func wrapMarkdown(body string, doc types.DocumentType, generated time.Time) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", string(doc))
	b.WriteString("> **WARNING**: synthetic test data generated for DLP testing. ")
	b.WriteString("No real personal information is present.\n\n")
	fmt.Fprintf(&b, "_Generated: %s_\n\n", generated.Format(time.RFC3339))
	b.WriteString("```\n")
	b.WriteString(body)
	b.WriteString("\n```\n")
	return []byte(b.String()), nil
}

// simulated returns a formatter that prefixes the body with a banner
// naming the nominal binary format. These files carry compound
// extensions (.pdf.txt and so on) and are not valid files of the named
// type; no binary encoder exists in this tool.
func simulated(name string) Formatter {
	return func(body string, doc types.DocumentType, generated time.Time) ([]byte, error) {
		var b strings.Builder
		fmt.Fprintf(&b, "[SIMULATED %s DOCUMENT - plain text stand-in for DLP testing]\n", name)
		fmt.Fprintf(&b, "[Nominal type: %s | Document: %s | Generated: %s]\n\n",
			name, string(doc), generated.Format(time.RFC3339))
		b.WriteString(body)
		return []byte(b.String()), nil
	}
}
