package model

import "io"

// InputFile is an image handed to a workflow, either read from disk or received as a multipart upload
type InputFile struct {
	Name    string
	Content io.Reader
	Size    int64
}

// OutputFile is an encoded image produced by a workflow
type OutputFile struct {
	Name    string `json:"name"`
	Content []byte `json:"content"`
}
