package composer

import (
	"instrufix/models"
)

// AddPendingImage queues a locally picked file for upload on submit. The
// preview handle stands in for the picked file until then; nothing is sent
// over the network at pick time.
func (c *Composer) AddPendingImage(file, previewURL string) {
	c.images = append(c.images, models.PendingImage(file, previewURL))
}

// AddRemoteImage records an already-hosted image URL, as loaded when editing
// an existing listing.
func (c *Composer) AddRemoteImage(url string) {
	c.images = append(c.images, models.RemoteImage(url))
}

// RemoveImage drops the image at index. Removing a pending image releases its
// preview handle; remote URLs are simply dropped from the draft and stay
// untouched on the server until the next submit.
func (c *Composer) RemoveImage(index int) {
	if index < 0 || index >= len(c.images) {
		return
	}
	img := c.images[index]
	if img.Kind == models.ImageKindPending && c.ReleasePreview != nil {
		c.ReleasePreview(img.PreviewURL)
	}
	c.images = append(c.images[:index], c.images[index+1:]...)
}

// Images returns the draft's image list, remote and pending entries mixed in
// pick order.
func (c *Composer) Images() []models.ImageRef {
	return c.images
}

// remoteImageURLs collects the hosted URLs kept on the draft; these ride
// inside businessInfo.image on update so the server retains them.
func (c *Composer) remoteImageURLs() []string {
	var urls []string
	for _, img := range c.images {
		if img.Kind == models.ImageKindRemote {
			urls = append(urls, img.URL)
		}
	}
	return urls
}

// pendingImageFiles collects the local files queued for upload.
func (c *Composer) pendingImageFiles() []string {
	var files []string
	for _, img := range c.images {
		if img.Kind == models.ImageKindPending {
			files = append(files, img.File)
		}
	}
	return files
}
