package markup

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoParameterTable is returned for pages without a "Parameter" header cell.
var ErrNoParameterTable = errors.New("page has no parameter table")

// Row is one line of the parameter table of an ability data page.
type Row struct {
	Parameter   string
	Value       string
	Description string
}

// ParameterRows reads the parameter table of a Template:Data_<Champion>/<Ability>
// page. The table is a run of (parameter, value, description) cells that
// starts three cells after the "Parameter" header. The first row holds the
// ability name and is reported as parameter "name".
func ParameterRows(r io.Reader) ([]Row, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	cells := collectCells(doc)
	start := -1
	for i, c := range cells {
		if nodeText(c) == "Parameter" {
			start = i + 3
			break
		}
	}
	if start < 0 {
		return nil, ErrNoParameterTable
	}
	cells = cells[min(start, len(cells)):]

	rows := make([]Row, 0, len(cells)/3+1)
	for i := 0; i < len(cells); i += 3 {
		// a trailing row without a value cell is dropped
		if i+1 >= len(cells) {
			break
		}
		row := Row{
			Parameter: nodeText(cells[i]),
			Value:     nodeText(cells[i+1]),
		}
		if i+2 < len(cells) {
			row.Description = nodeText(cells[i+2])
		}
		if i == 0 {
			row.Parameter = "name"
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// collectCells returns every th and td element in document order.
func collectCells(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.DataAtom == atom.Th || n.DataAtom == atom.Td) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}
