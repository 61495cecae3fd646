// Package output renders token sequences and expression trees for the CLI.
package output

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/relq/relq"
)

// WriteTokenTable renders the token sequence as an aligned table.
func WriteTokenTable(w io.Writer, tokens []relq.Token) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Type", "Value"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)

	rows := [][]string{}
	for i, t := range tokens {
		rows = append(rows, []string{strconv.Itoa(i), t.Type.String(), tokenValue(t)})
	}

	table.AppendBulk(rows)
	table.Render()
}

func tokenValue(t relq.Token) string {
	if t.Type == relq.EOF {
		return ""
	}
	return t.String()
}

// WriteExpressionJSON writes the expression tree as indented JSON.
func WriteExpressionJSON(w io.Writer, expr relq.Expression) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(expr); err != nil {
		return errors.Wrap(err, "encode expression")
	}
	return nil
}
