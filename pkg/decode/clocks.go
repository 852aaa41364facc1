package decode

import (
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"github.com/yugabyte/ybstats/pkg/model"
)

// DecodeClocksHTML decodes the master-only /tablet-server-clocks HTML
// table into Clocks rows, walking the first <table> in source order.
func DecodeClocksHTML(body []byte, env model.Envelope) []model.Clocks {
	if len(body) == 0 {
		return nil
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		slog.Debug("decode: malformed /tablet-server-clocks HTML", "error", err)
		return nil
	}

	table := findFirstTable(doc)
	if table == nil {
		return nil
	}

	var rows []model.Clocks
	firstRowSkipped := false
	walkRows(table, func(cells []string) {
		if !firstRowSkipped {
			firstRowSkipped = true
			return // header row
		}
		rows = append(rows, cellsToClocks(env, cells))
	})
	return rows
}

func findFirstTable(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "table" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirstTable(c); found != nil {
			return found
		}
	}
	return nil
}

func walkRows(table *html.Node, visit func(cells []string)) {
	for n := table.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode && (n.Data == "tbody" || n.Data == "thead") {
			walkRows(n, visit)
			continue
		}
		if n.Type == html.ElementNode && n.Data == "tr" {
			visit(rowCells(n))
		}
	}
}

func rowCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, strings.TrimSpace(textContent(c)))
		}
	}
	return cells
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

// cellsToClocks maps a data row positionally: server, time_since_heartbeat,
// status_uptime, physical_time_utc, hybrid_time_utc, heartbeat_rtt, cloud,
// region, zone (§6).
func cellsToClocks(env model.Envelope, cells []string) model.Clocks {
	get := func(i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	}
	return model.Clocks{
		Envelope:           env,
		Server:             get(0),
		TimeSinceHeartbeat: get(1),
		StatusUptime:       get(2),
		PhysicalTimeUTC:    get(3),
		HybridTimeUTC:      get(4),
		HeartbeatRTT:       get(5),
		Cloud:              get(6),
		Region:             get(7),
		Zone:               get(8),
	}
}
