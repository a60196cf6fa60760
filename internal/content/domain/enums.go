package domain

// SectionType selects how a case-study section is laid out.
type SectionType string

const (
	SectionText      SectionType = "text"
	SectionImage     SectionType = "image"
	SectionTextImage SectionType = "textImage"
	SectionGallery   SectionType = "gallery"
)

func (s SectionType) Valid() bool {
	switch s {
	case SectionText, SectionImage, SectionTextImage, SectionGallery:
		return true
	}
	return false
}

// HasText reports whether the section renders its text content.
func (s SectionType) HasText() bool {
	return s == SectionText || s == SectionTextImage
}

// HasImage reports whether the section renders its single image.
func (s SectionType) HasImage() bool {
	return s == SectionImage || s == SectionTextImage
}

// BookingStatus follows pending -> confirmed -> completed, or cancelled.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// PageType names the per-route page singletons.
type PageType string

const (
	PageAbout       PageType = "pageAbout"
	PageContact     PageType = "pageContact"
	PageWork        PageType = "pageWork"
	PageBrandReview PageType = "pageBrandReview"
)

func (p PageType) Valid() bool {
	switch p {
	case PageAbout, PageContact, PageWork, PageBrandReview:
		return true
	}
	return false
}
