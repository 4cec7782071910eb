package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeader(t *testing.T) {
	assert.Equal(t, []string{
		"Query", "Name", "Valid", "Contig", "Start", "F_Slide", "End", "R_Slide",
		"Strand", "Identity", "VF_length", "Ref_Length", "Coverage_Perc_Len",
		"Coverage_Perc_Align", "Message",
	}, Header())
}

func TestValues(t *testing.T) {
	row := Row{
		Query: "asm1", Name: "vfA", Valid: true, Anchored: true, Contig: "c1",
		Start: 101, FSlide: 10.0 / 3, End: 400, Strand: "+", Identity: 100,
		VFLength: 300, RefLength: 300, CoveragePercLen: 100, CoveragePercAlign: 100,
	}
	assert.Equal(t, []string{
		"asm1", "vfA", "True", "c1", "101", "3.33", "400", "0.00", "+", "100.00",
		"300", "300", "100.00", "100.00", "",
	}, row.Values())

	miss := Row{Query: "asm1", Name: "vfB", RefLength: 250, Message: "no forward hit"}
	assert.Equal(t, []string{
		"asm1", "vfB", "False", "", "", "", "", "", "", "", "", "250", "0.00", "0.00", "no forward hit",
	}, miss.Values())
}
