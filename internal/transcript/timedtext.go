package transcript

import (
	"bytes"
	"encoding/xml"
	"io"
	"regexp"
	"strings"
)

// parseTimedText streams over the legacy caption XML. Each <p> or <text>
// element becomes one line: its direct character data and any <s> run
// children, trimmed and joined with single spaces. Lines join with
// newlines. When no such elements exist the bracket salvage runs as a
// last-resort heuristic.
func parseTimedText(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false

	var lines []string
	var current []string
	inLine := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed documents fall through to the salvage path
			// with whatever lines were already collected.
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "p" || t.Name.Local == "text" {
				inLine = true
				current = current[:0]
			}
		case xml.CharData:
			if !inLine {
				continue
			}
			if s := strings.TrimSpace(string(t)); s != "" {
				current = append(current, s)
			}
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "text" {
				if len(current) > 0 {
					lines = append(lines, strings.Join(current, " "))
				}
				inLine = false
			}
		}
	}

	if len(lines) == 0 {
		return salvageBracketText(data), nil
	}
	return strings.Join(lines, "\n"), nil
}

var bracketTextPattern = regexp.MustCompile(`>([^<]+)<`)

// salvageBracketText extracts every angle-bracket-delimited fragment from
// a document the structured parser got nothing out of. Best-effort only:
// trigger conditions and output quality are not guaranteed.
func salvageBracketText(data []byte) string {
	var fragments []string
	for _, m := range bracketTextPattern.FindAllSubmatch(data, -1) {
		frag := strings.TrimSpace(string(m[1]))
		if frag == "" || strings.HasPrefix(frag, "?xml") {
			continue
		}
		fragments = append(fragments, strings.ReplaceAll(frag, "\u00a0", " "))
	}
	return strings.Join(fragments, " ")
}
