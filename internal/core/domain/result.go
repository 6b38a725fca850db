package domain

// CaseResult is the case metadata returned for a successful query.
// PDFLinks keeps the server's order; it is also the render order.
type CaseResult struct {
	Parties         string   `json:"parties"`
	FilingDate      string   `json:"filing_date"`
	NextHearingDate string   `json:"next_hearing_date"`
	PDFLinks        []string `json:"pdf_links"`
}

// HasDocuments reports whether the result carries any document links.
func (r CaseResult) HasDocuments() bool {
	return len(r.PDFLinks) > 0
}
