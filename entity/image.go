package entity

// Image is a stored media reference: public URL plus the storage
// collaborator's opaque id.
type Image struct {
	URL       string `json:"url"`
	StorageID string `json:"storageId,omitempty"`
}

func (i Image) Empty() bool { return i.URL == "" && i.StorageID == "" }
