package admin

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mobileshop-server/gateway"
)

// Uploader decouples choosing an image from submitting the form it
// belongs to. The file is held locally until ResolveImageURL uploads it;
// a manually entered URL is used when no file was chosen.
type Uploader struct {
	mu        sync.Mutex
	prefix    string
	gw        gateway.Client
	fileName  string
	fileData  []byte
	manualURL string
}

// NewUploader creates an uploader whose stored files are keyed under the
// given entity-type prefix.
func NewUploader(prefix string, gw gateway.Client) *Uploader {
	return &Uploader{prefix: prefix, gw: gw}
}

// SelectFile stores the chosen file without uploading it.
func (u *Uploader) SelectFile(name string, data []byte) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.fileName = name
	u.fileData = data
}

// ClearFile drops the selected file.
func (u *Uploader) ClearFile() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.fileName = ""
	u.fileData = nil
}

// SetManualURL records a typed-in image URL, used when no file is chosen.
func (u *Uploader) SetManualURL(url string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.manualURL = url
}

// HasFile reports whether a file is currently selected.
func (u *Uploader) HasFile() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.fileData != nil
}

// ResolveImageURL produces the image URL for the enclosing submission:
// the public URL of the uploaded file if one was selected, otherwise the
// manual URL, otherwise nil. On upload failure the selection is kept so
// the user can retry without reselecting.
func (u *Uploader) ResolveImageURL(ctx context.Context) (*string, error) {
	u.mu.Lock()
	name, data, manual := u.fileName, u.fileData, u.manualURL
	u.mu.Unlock()

	if data == nil {
		if manual == "" {
			return nil, nil
		}
		return &manual, nil
	}

	path := fmt.Sprintf("%d_%s", time.Now().UnixNano(), name)
	url, err := u.gw.UploadFile(ctx, u.prefix, path, data)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	u.fileName = ""
	u.fileData = nil
	u.mu.Unlock()

	return &url, nil
}
