// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for pdftool: the operation
// enumeration, per-operation request parameters, document reports, and
// configuration.
package types

// Operation identifies one of the fixed set of pdftool commands.
type Operation string

const (
	OpMerge       Operation = "merge"
	OpSplit       Operation = "split"
	OpExtractText Operation = "extract-text"
	OpRotate      Operation = "rotate"
	OpWatermark   Operation = "watermark"
	OpInfo        Operation = "info"
	OpCreate      Operation = "create"
)

// Operations returns every supported operation in CLI order.
func Operations() []Operation {
	return []Operation{OpMerge, OpSplit, OpExtractText, OpRotate, OpWatermark, OpInfo, OpCreate}
}

// Valid reports whether op is one of the supported operations.
func (op Operation) Valid() bool {
	for _, o := range Operations() {
		if o == op {
			return true
		}
	}
	return false
}

// MergeRequest concatenates Inputs, in order, into Output.
type MergeRequest struct {
	Inputs []string `json:"inputs" yaml:"inputs"`
	Output string   `json:"output" yaml:"output"`
}

// SplitRequest cuts Input into chunks of PagesPerFile pages under OutDir.
type SplitRequest struct {
	Input        string `json:"input" yaml:"input"`
	OutDir       string `json:"out_dir" yaml:"out_dir"`
	PagesPerFile int    `json:"pages_per_file" yaml:"pages_per_file"`
}

// ExtractTextRequest extracts page text from Input. An empty Output means
// the text goes to the caller's writer.
type ExtractTextRequest struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// RotateRequest rotates every page of Input clockwise by Angle degrees.
type RotateRequest struct {
	Input  string `json:"input" yaml:"input"`
	Angle  int    `json:"angle" yaml:"angle"`
	Output string `json:"output" yaml:"output"`
}

// WatermarkRequest stamps Text onto every page of Input.
type WatermarkRequest struct {
	Input  string `json:"input" yaml:"input"`
	Text   string `json:"text" yaml:"text"`
	Output string `json:"output" yaml:"output"`
}

// InfoRequest reports on each of Inputs. Files are independent: one failing
// does not stop the others.
type InfoRequest struct {
	Inputs []string `json:"inputs" yaml:"inputs"`

	// Format selects the report encoding: text (default), yaml, or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// CreateRequest writes a new document holding Content to Output.
type CreateRequest struct {
	Output  string `json:"output" yaml:"output"`
	Content string `json:"content" yaml:"content"`
}

// Request is a tagged variant over the operation parameter sets. Op selects
// the variant; only the matching field is read.
type Request struct {
	Op Operation `json:"op" yaml:"op"`

	Merge       *MergeRequest       `json:"merge,omitempty" yaml:"merge,omitempty"`
	Split       *SplitRequest       `json:"split,omitempty" yaml:"split,omitempty"`
	ExtractText *ExtractTextRequest `json:"extract_text,omitempty" yaml:"extract_text,omitempty"`
	Rotate      *RotateRequest      `json:"rotate,omitempty" yaml:"rotate,omitempty"`
	Watermark   *WatermarkRequest   `json:"watermark,omitempty" yaml:"watermark,omitempty"`
	Info        *InfoRequest        `json:"info,omitempty" yaml:"info,omitempty"`
	Create      *CreateRequest      `json:"create,omitempty" yaml:"create,omitempty"`
}
