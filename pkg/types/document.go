// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Metadata holds the optional document information dictionary entries.
// Absent entries are empty strings.
type Metadata struct {
	Title        string `json:"title,omitempty" yaml:"title,omitempty"`
	Author       string `json:"author,omitempty" yaml:"author,omitempty"`
	Subject      string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Keywords     string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Creator      string `json:"creator,omitempty" yaml:"creator,omitempty"`
	Producer     string `json:"producer,omitempty" yaml:"producer,omitempty"`
	CreationDate string `json:"creation_date,omitempty" yaml:"creation_date,omitempty"`
	ModDate      string `json:"mod_date,omitempty" yaml:"mod_date,omitempty"`
}

// Empty reports whether no metadata entry is set.
func (m Metadata) Empty() bool {
	return m == Metadata{}
}

// Entries returns the set metadata entries as label/value pairs in a fixed order.
func (m Metadata) Entries() [][2]string {
	all := [][2]string{
		{"Title", m.Title},
		{"Author", m.Author},
		{"Subject", m.Subject},
		{"Keywords", m.Keywords},
		{"Creator", m.Creator},
		{"Producer", m.Producer},
		{"CreationDate", m.CreationDate},
		{"ModDate", m.ModDate},
	}
	var out [][2]string
	for _, e := range all {
		if e[1] != "" {
			out = append(out, e)
		}
	}
	return out
}

// PageSize is a page's width and height in PDF points (1/72 inch).
type PageSize struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// DocumentInfo is the read-only report produced by the info operation.
type DocumentInfo struct {
	// Path is the file the report describes.
	Path string `json:"path" yaml:"path"`

	// FileSize is the size of the file on disk in bytes.
	FileSize int64 `json:"file_size" yaml:"file_size"`

	// Version is the PDF header version (e.g. "1.7").
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// PageCount is the number of pages in the document.
	PageCount int `json:"page_count" yaml:"page_count"`

	Metadata Metadata `json:"metadata" yaml:"metadata"`

	// FirstPage is the media box size of page 1; nil for an empty document.
	FirstPage *PageSize `json:"first_page,omitempty" yaml:"first_page,omitempty"`

	// Rotations holds the /Rotate value of each page, in page order.
	Rotations []int `json:"rotations,omitempty" yaml:"rotations,omitempty"`
}
