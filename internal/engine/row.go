// internal/engine/row.go
package engine

// Row is the call for one reference in one assembly. Location fields are
// meaningful only when Anchored is true.
type Row struct {
	Query             string
	Name              string
	Valid             bool
	Anchored          bool
	Contig            string
	Start             int
	FSlide            float64
	End               int
	RSlide            float64
	Strand            string
	Identity          float64
	VFLength          int
	RefLength         int
	CoveragePercLen   float64
	CoveragePercAlign float64
	Message           string

	// Forward and Reverse are the anchors of a located call. They are not
	// part of the tabular schema.
	Forward, Reverse Site
}

// Table holds one Row per reference, in database order.
type Table []Row
