package schema

// Attachement message attachement
type Attachement struct {
	// ImageURLs attached image urls
	ImageURLs []string `json:"image_urls,omitempty"`
}
