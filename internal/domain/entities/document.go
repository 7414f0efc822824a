package entities

// DocumentUpload is a raw file routed from the request boundary into the vault.
type DocumentUpload struct {
	Filename     string
	Content      []byte
	DeclaredSize int64
}

// Size returns the larger of the declared size and the actual byte count, so a
// client cannot understate an upload.
func (d DocumentUpload) Size() int64 {
	n := int64(len(d.Content))
	if d.DeclaredSize > n {
		return d.DeclaredSize
	}
	return n
}

func (d *DocumentUpload) IsEmpty() bool {
	return d == nil || len(d.Content) == 0
}

// Document is a decrypted attachment ready to stream back to a caller.
type Document struct {
	Reference   string
	ContentType string
	Content     []byte
}
