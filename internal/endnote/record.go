package endnote

// Record is one bibliographic entry extracted from an EndNote XML export.
// Every field holds the rendered text of the source element, defaulting to
// the empty string when the element is missing or textless.
type Record struct {
	Authors  string `json:"authors" parquet:"authors"`
	PubDate  string `json:"pub_date" parquet:"pub_date"`
	Title    string `json:"title" parquet:"title"`
	Journal  string `json:"journal" parquet:"journal"`
	Volume   string `json:"volume" parquet:"volume"`
	Label    string `json:"label" parquet:"label"`
	WorkType string `json:"work_type" parquet:"work_type"`
}

// Columns is the fixed output header, in order. Every writer emits exactly
// these columns for every record.
var Columns = []string{"Authors", "PubDate", "Title", "Journal", "Volume", "Label", "WorkType"}

// Values returns the record's fields in Columns order.
func (r Record) Values() []string {
	return []string{r.Authors, r.PubDate, r.Title, r.Journal, r.Volume, r.Label, r.WorkType}
}
