package rentora

import (
	"context"
	"fmt"
	"io"
)

// ImagesService handles property image uploads.
type ImagesService struct {
	client *Client
}

// UploadPropertyImage uploads one image for a property as a multipart
// form with a single "file" field.
func (s *ImagesService) UploadPropertyImage(ctx context.Context, propertyID int64, filename string, file io.Reader) (*Image, error) {
	var resp Image
	path := fmt.Sprintf("/images/upload/property/%d", propertyID)
	if err := s.client.upload(ctx, path, filename, file, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
