package transcript

import (
	"encoding/json"
	"strings"
)

// eventsBody is the json3 caption document. Only events carrying segs
// contribute text; the rest are timing/window records.
type eventsBody struct {
	Events []struct {
		Segs []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

// parseEventSegments joins each event's segment texts in order, skips
// events without segments, and joins the events with single spaces.
// Non-breaking spaces are normalized to regular spaces.
func parseEventSegments(data []byte) (string, error) {
	var body eventsBody
	if err := json.Unmarshal(data, &body); err != nil {
		return "", err
	}

	var lines []string
	for _, ev := range body.Events {
		if len(ev.Segs) == 0 {
			continue
		}
		var sb strings.Builder
		for _, seg := range ev.Segs {
			sb.WriteString(seg.UTF8)
		}
		line := strings.ReplaceAll(sb.String(), "\u00a0", " ")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.TrimSpace(line))
	}
	return strings.Join(lines, " "), nil
}
