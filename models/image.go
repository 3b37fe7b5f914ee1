package models

// ImageRef kinds. A draft image list mixes images already hosted remotely
// (edit of an existing listing) with freshly picked files that have not been
// uploaded yet; the kind tag keeps the two unambiguous.
const (
	ImageKindRemote  = "remote"
	ImageKindPending = "pending"
)

// ImageRef is one entry in a draft's image list.
type ImageRef struct {
	Kind string `json:"kind"`

	// URL is set for remote images: the hosted location already persisted
	// with the listing.
	URL string `json:"url,omitempty"`

	// File and PreviewURL are set for pending images: the local path queued
	// for upload on submit and its local preview handle.
	File       string `json:"file,omitempty"`
	PreviewURL string `json:"previewUrl,omitempty"`
}

// RemoteImage builds a reference to an already-hosted image.
func RemoteImage(url string) ImageRef {
	return ImageRef{Kind: ImageKindRemote, URL: url}
}

// PendingImage builds a reference to a locally picked file awaiting upload.
func PendingImage(file, previewURL string) ImageRef {
	return ImageRef{Kind: ImageKindPending, File: file, PreviewURL: previewURL}
}
