package models

// OMDBStatus is the part of every OMDb payload that signals success.
// The full payload is relayed to the client untouched.
type OMDBStatus struct {
	Response string `json:"Response"`
	Error    string `json:"Error,omitempty"`
}

// MovieSummary is one entry of an OMDb search result.
type MovieSummary struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}
