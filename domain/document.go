package domain

// Document is a listed or freshly uploaded blob together with its signed URL.
// SignedURL is nil when minting the URL failed for this one entry; listing
// never fails as a whole because of it.
type Document struct {
	Name      string  `json:"name"`
	SignedURL *string `json:"signedUrl"`
}

// Object describes a blob as reported by the storage listing endpoint.
type Object struct {
	Name      string `json:"name"`
	ID        string `json:"id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
