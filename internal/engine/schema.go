// internal/engine/schema.go
package engine

import "strconv"

// Column is one field of the result schema with its text rendering.
type Column struct {
	Name  string
	Value func(Row) string
}

// Columns is the single source of truth for result column order.
var Columns = []Column{
	{"Query", func(r Row) string { return r.Query }},
	{"Name", func(r Row) string { return r.Name }},
	{"Valid", func(r Row) string { return pyBool(r.Valid) }},
	{"Contig", located(func(r Row) string { return r.Contig })},
	{"Start", located(func(r Row) string { return strconv.Itoa(r.Start) })},
	{"F_Slide", located(func(r Row) string { return fmtFloat(r.FSlide) })},
	{"End", located(func(r Row) string { return strconv.Itoa(r.End) })},
	{"R_Slide", located(func(r Row) string { return fmtFloat(r.RSlide) })},
	{"Strand", located(func(r Row) string { return r.Strand })},
	{"Identity", located(func(r Row) string { return fmtFloat(r.Identity) })},
	{"VF_length", located(func(r Row) string { return strconv.Itoa(r.VFLength) })},
	{"Ref_Length", func(r Row) string { return strconv.Itoa(r.RefLength) }},
	{"Coverage_Perc_Len", func(r Row) string { return fmtFloat(r.CoveragePercLen) }},
	{"Coverage_Perc_Align", func(r Row) string { return fmtFloat(r.CoveragePercAlign) }},
	{"Message", func(r Row) string { return r.Message }},
}

// Header returns the column names in order.
func Header() []string {
	out := make([]string, len(Columns))
	for i, c := range Columns {
		out[i] = c.Name
	}
	return out
}

// Values renders r in column order.
func (r Row) Values() []string {
	out := make([]string, len(Columns))
	for i, c := range Columns {
		out[i] = c.Value(r)
	}
	return out
}

func located(f func(Row) string) func(Row) string {
	return func(r Row) string {
		if !r.Anchored {
			return ""
		}
		return f(r)
	}
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func fmtFloat(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }
