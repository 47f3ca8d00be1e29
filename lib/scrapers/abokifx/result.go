package abokifx

// Result is the listing handed to the presentation layer.
type Result struct {
	Title string     `json:"title"`
	Data  [][]string `json:"data"`
}

func Assemble(table Table) Result {
	data := make([][]string, len(table.Rows))
	for i, row := range table.Rows {
		data[i] = append([]string{}, row...)
	}
	return Result{Title: table.Title, Data: data}
}

// Width is the token count of the widest row.
func (r Result) Width() int {
	width := 0
	for _, row := range r.Data {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}
