package request

import (
	"io"
)

// ProductForm holds the raw multipart fields of a product create/update.
// Values stay strings so numeric validation happens in one place, after the
// optional image has been stored.
type ProductForm struct {
	Name        *string
	Description *string
	Price       *string
	Stock       *string
	CategoryID  *string
	Image       *ImageUpload
}

type ImageUpload struct {
	File     io.ReadSeeker
	Filename string
	Size     int64
}
