// Package media abstracts the external image host so handlers and tests
// never talk to Cloudinary directly.
package media

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Image is the hosted location of an uploaded file. Filename is the
// host-side identifier needed to delete it later.
type Image struct {
	URL      string
	Filename string
}

// Store is the media host contract. Both operations are best-effort and
// non-transactional with respect to the database.
type Store interface {
	Upload(ctx context.Context, file io.Reader) (Image, error)
	Delete(ctx context.Context, filename string) error
}

// Cloudinary implements Store against the Cloudinary upload API,
// configured from the CLOUDINARY_URL environment variable.
type Cloudinary struct {
	client *cloudinary.Cloudinary
	folder string
}

func NewCloudinary(folder string) (*Cloudinary, error) {
	cld, err := cloudinary.New()
	if err != nil {
		return nil, err
	}
	return &Cloudinary{client: cld, folder: folder}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, file io.Reader) (Image, error) {
	res, err := c.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   c.folder,
		PublicID: uuid.NewString(),
	})
	if err != nil {
		return Image{}, err
	}
	return Image{URL: res.SecureURL, Filename: res.PublicID}, nil
}

func (c *Cloudinary) Delete(ctx context.Context, filename string) error {
	_, err := c.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: filename})
	return err
}
