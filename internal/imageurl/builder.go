package imageurl

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mhdatheek136/branfern/internal/content/domain"
)

const DefaultBaseURL = "https://cdn.sanity.io"

// Fit is a crop/resize mode understood by the image CDN.
type Fit string

const (
	FitClip    Fit = "clip"
	FitCrop    Fit = "crop"
	FitFill    Fit = "fill"
	FitFillMax Fit = "fillmax"
	FitMax     Fit = "max"
	FitScale   Fit = "scale"
	FitMin     Fit = "min"
)

func (f Fit) Valid() bool {
	switch f {
	case FitClip, FitCrop, FitFill, FitFillMax, FitMax, FitScale, FitMin:
		return true
	}
	return false
}

// Options select the rendered size. Zero values are omitted.
type Options struct {
	Width  int
	Height int
	Fit    Fit
}

// Builder turns stored image references into CDN URLs.
type Builder struct {
	ProjectID string
	Dataset   string
	BaseURL   string
}

func New(projectID, dataset, baseURL string) *Builder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Builder{ProjectID: projectID, Dataset: dataset, BaseURL: strings.TrimRight(baseURL, "/")}
}

// Asset is a parsed image asset reference.
type Asset struct {
	ID     string
	Width  int
	Height int
	Format string
}

// ParseRef parses "image-<id>-<W>x<H>-<ext>".
func ParseRef(ref string) (Asset, error) {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" || parts[1] == "" || parts[3] == "" {
		return Asset{}, fmt.Errorf("malformed image reference %q", ref)
	}
	dims := strings.SplitN(parts[2], "x", 2)
	if len(dims) != 2 {
		return Asset{}, fmt.Errorf("malformed image dimensions %q", parts[2])
	}
	w, err := strconv.Atoi(dims[0])
	if err != nil {
		return Asset{}, fmt.Errorf("image width: %w", err)
	}
	h, err := strconv.Atoi(dims[1])
	if err != nil {
		return Asset{}, fmt.Errorf("image height: %w", err)
	}
	return Asset{ID: parts[1], Width: w, Height: h, Format: parts[3]}, nil
}

// URLFor returns the sized URL for img, or nil when img is absent or unusable.
func (b *Builder) URLFor(img *domain.ImageRef, opts Options) *string {
	s, ok := b.URLForRef(img.AssetID(), opts)
	if !ok {
		return nil
	}
	return &s
}

// URLForRef builds the URL from a raw asset reference.
func (b *Builder) URLForRef(ref string, opts Options) (string, bool) {
	if ref == "" {
		return "", false
	}
	asset, err := ParseRef(ref)
	if err != nil {
		return "", false
	}

	u := fmt.Sprintf("%s/images/%s/%s/%s-%dx%d.%s",
		b.BaseURL, url.PathEscape(b.ProjectID), url.PathEscape(b.Dataset),
		asset.ID, asset.Width, asset.Height, asset.Format)

	q := url.Values{}
	if opts.Width > 0 {
		q.Set("w", strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		q.Set("h", strconv.Itoa(opts.Height))
	}
	if opts.Fit.Valid() {
		q.Set("fit", string(opts.Fit))
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u, true
}
