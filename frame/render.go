package frame

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/hupe1980/labelframe/scalar"
)

// String renders a header of column labels and one line per row.
func (df *DataFrame) String() string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, l := range df.cols.All() {
		fmt.Fprintf(tw, "\t%s", l)
	}
	fmt.Fprint(tw, "\t\n")
	for i, l := range df.rows.All() {
		fmt.Fprintf(tw, "%s", l)
		for _, s := range df.data {
			fmt.Fprintf(tw, "\t%s", s.Buffer().At(i))
		}
		fmt.Fprint(tw, "\t\n")
	}
	_ = tw.Flush()
	fmt.Fprintf(&sb, "[%d rows x %d columns]", df.rows.Len(), df.cols.Len())
	return sb.String()
}

type frameJSON struct {
	Columns []scalar.Value   `json:"columns"`
	Index   []scalar.Value   `json:"index"`
	Data    [][]scalar.Value `json:"data"`
}

// MarshalJSON implements json.Marshaler in split orientation: column
// labels, row labels and row-major data.
func (df *DataFrame) MarshalJSON() ([]byte, error) {
	return json.Marshal(frameJSON{
		Columns: df.cols.Labels(),
		Index:   df.rows.Labels(),
		Data:    df.Values(),
	})
}
