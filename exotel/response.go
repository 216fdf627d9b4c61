package exotel

// batchLimit is the provider-imposed ceiling on contacts per create call.
const batchLimit = 5000

// ErrorData carries a provider-side failure description for one result entry.
type ErrorData struct {
	Code        int    `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
}

// EntryData holds the identifiers a result entry reports for the resource it
// touched.
type EntryData struct {
	SID    string `json:"sid,omitempty"`
	ListID string `json:"list_id,omitempty"`
}

// ResponseEntry is one per-item result in a bulk response.
type ResponseEntry struct {
	Code      int        `json:"code"`
	Status    string     `json:"status,omitempty"`
	Data      *EntryData `json:"data,omitempty"`
	ErrorData *ErrorData `json:"error_data,omitempty"`
}

// BulkMetadata aggregates per-item outcomes of a bulk response.
type BulkMetadata struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Failed  int `json:"failed,omitempty"`
}

// BulkResponse is the envelope the contact and list endpoints return.
type BulkResponse struct {
	Response []ResponseEntry `json:"response"`
	Metadata *BulkMetadata   `json:"metadata,omitempty"`
}

// contactSIDs collects the contact identifier of every result entry.
func (r *BulkResponse) contactSIDs() []string {
	sids := make([]string, 0, len(r.Response))
	for _, entry := range r.Response {
		if entry.Data != nil {
			sids = append(sids, entry.Data.SID)
		}
	}
	return sids
}

// listID returns the contact list identifier of the first result entry.
func (r *BulkResponse) listID() string {
	if len(r.Response) == 0 || r.Response[0].Data == nil {
		return ""
	}
	return r.Response[0].Data.ListID
}

// merge appends other's entries and counters onto r.
func (r *BulkResponse) merge(other *BulkResponse) {
	r.Response = append(r.Response, other.Response...)
	if r.Metadata != nil && other.Metadata != nil {
		r.Metadata.Total += other.Metadata.Total
		r.Metadata.Success += other.Metadata.Success
		r.Metadata.Failed += other.Metadata.Failed
	} else if r.Metadata == nil {
		r.Metadata = other.Metadata
	}
}

// batchNumbers splits numbers into chunks of at most limit elements.
func batchNumbers(numbers []string, limit int) [][]string {
	var batches [][]string
	for start := 0; start < len(numbers); start += limit {
		end := start + limit
		if end > len(numbers) {
			end = len(numbers)
		}
		batches = append(batches, numbers[start:end])
	}
	return batches
}
