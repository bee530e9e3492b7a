package sicar

import "fmt"

// OutputFormat selects which artifact kind the portal serves.
type OutputFormat string

const (
	// Shapefile is the zipped polygon base.
	Shapefile OutputFormat = "shapefile"
	// CSV is the tabular base.
	CSV OutputFormat = "csv"
)

func (f OutputFormat) valid() bool {
	return f == Shapefile || f == CSV
}

// contentType is the payload type a genuine artifact response declares.
// The portal answers rejected captchas with HTTP 200 and an HTML page, so
// the type check is what actually separates success from refusal.
func (f OutputFormat) contentType() string {
	if f == CSV {
		return "text/csv"
	}
	return "application/zip"
}

// artifactName builds the destination file name for a region, e.g.
// SHAPE_SP.zip or CSV_3550308.csv.
func (f OutputFormat) artifactName(region string) string {
	if f == CSV {
		return fmt.Sprintf("CSV_%s.csv", region)
	}
	return fmt.Sprintf("SHAPE_%s.zip", region)
}
