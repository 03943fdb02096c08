package usecase

import "io"

// FileUpload is an uploaded file as received from the client.
type FileUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}
