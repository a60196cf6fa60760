package domain

import (
	"encoding/json"
	"time"
)

// AssetRef is the opaque pointer a content-store image carries to its asset.
type AssetRef struct {
	Ref string `json:"_ref"`
}

// ImageRef is an image field as stored in the content store.
type ImageRef struct {
	Asset   *AssetRef `json:"asset,omitempty"`
	Alt     string    `json:"alt,omitempty"`
	Caption string    `json:"caption,omitempty"`
}

// AssetID returns the asset reference, or "" when the image is unset.
func (i *ImageRef) AssetID() string {
	if i == nil || i.Asset == nil {
		return ""
	}
	return i.Asset.Ref
}

// SiteSettings is the singleton holding company identity, footer/nav labels and SEO defaults.
type SiteSettings struct {
	CompanyName           string     `json:"companyName,omitempty"`
	Email                 string     `json:"email,omitempty"`
	Phone                 string     `json:"phone,omitempty"`
	Location              string     `json:"location,omitempty"`
	Timezone              string     `json:"timezone,omitempty"`
	HeroTitle             string     `json:"heroTitle,omitempty"`
	HeroSubtitle          string     `json:"heroSubtitle,omitempty"`
	HeroBackgroundImage   *ImageRef  `json:"heroBackgroundImage,omitempty"`
	HeroImages            []ImageRef `json:"heroImages,omitempty"`
	FooterOverlayTitle    string     `json:"footerOverlayTitle,omitempty"`
	FooterOverlaySubtitle string     `json:"footerOverlaySubtitle,omitempty"`
	FooterHoverText       string     `json:"footerHoverPlaceholder,omitempty"`
	FooterWorkingHeading  string     `json:"footerWorkingHeading,omitempty"`
	FooterContactsHeading string     `json:"footerContactsHeading,omitempty"`
	FooterLocationHeading string     `json:"footerLocationHeading,omitempty"`
	FooterScrollTopText   string     `json:"footerScrollTopText,omitempty"`
	NavHomeLabel          string     `json:"navHomeLabel,omitempty"`
	NavBrandReviewLabel   string     `json:"navBrandReviewLabel,omitempty"`
	NavAboutLabel         string     `json:"navAboutLabel,omitempty"`
	NavWorkLabel          string     `json:"navWorkLabel,omitempty"`
	NavContactLabel       string     `json:"navContactLabel,omitempty"`
	SEODefaultTitle       string     `json:"seoDefaultTitle,omitempty"`
	SEODefaultDescription string     `json:"seoDefaultDescription,omitempty"`
	SEODefaultImage       *ImageRef  `json:"seoDefaultImage,omitempty"`
}

// ProjectSummary is the card-level projection of a portfolio project.
type ProjectSummary struct {
	ID               string    `json:"_id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Category         string    `json:"category,omitempty"`
	Tags             []string  `json:"tags,omitempty"`
	MainImage        *ImageRef `json:"mainImage,omitempty"`
	ShortDescription string    `json:"shortDescription,omitempty"`
	Order            *float64  `json:"order,omitempty"`
	CreatedAt        time.Time `json:"_createdAt"`
}

// ProjectRef is the neighbour projection used for sequential case-study navigation.
type ProjectRef struct {
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	MainImage *ImageRef `json:"mainImage,omitempty"`
}

// ContentSection is one typed block of a case study.
type ContentSection struct {
	Key         string          `json:"_key"`
	SectionType SectionType     `json:"sectionType"`
	Heading     string          `json:"heading,omitempty"`
	Content     json.RawMessage `json:"content,omitempty"`
	Image       *ImageRef       `json:"image,omitempty"`
	Images      []ImageRef      `json:"images,omitempty"`
}

// ProjectDetail is a full case study plus its chronological neighbours.
type ProjectDetail struct {
	ProjectSummary
	FullDescription json.RawMessage  `json:"fullDescription,omitempty"`
	Date            string           `json:"date,omitempty"`
	Location        string           `json:"location,omitempty"`
	SEOTitle        string           `json:"seoTitle,omitempty"`
	SEODescription  string           `json:"seoDescription,omitempty"`
	SEOImage        *ImageRef        `json:"seoImage,omitempty"`
	Gallery         []ImageRef       `json:"gallery,omitempty"`
	ContentSections []ContentSection `json:"contentSections,omitempty"`
	Prev            *ProjectRef      `json:"prevProject,omitempty"`
	Next            *ProjectRef      `json:"nextProject,omitempty"`
}

type ShowreelSlide struct {
	ID       string    `json:"_id"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	Image    *ImageRef `json:"image,omitempty"`
}

type TeamMember struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Role         string    `json:"role,omitempty"`
	Image        *ImageRef `json:"image,omitempty"`
	InstagramURL string    `json:"instagramUrl,omitempty"`
	Bio          string    `json:"bio,omitempty"`
}

type ServiceCard struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Service is one of the agency's service pillars (Digital, Physical, Human).
type Service struct {
	ID           string        `json:"_id"`
	PillarNumber string        `json:"pillarNumber"`
	Heading      string        `json:"heading"`
	Description  string        `json:"description,omitempty"`
	Image        *ImageRef     `json:"image,omitempty"`
	Cards        []ServiceCard `json:"cards,omitempty"`
}

type DesignCategory struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type SocialLink struct {
	ID       string   `json:"_id"`
	Platform Platform `json:"platform"`
	URL      string   `json:"url"`
	IconName string   `json:"iconName,omitempty"`
}

type NavigationLink struct {
	ID    string `json:"_id"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// FormOptions is the singleton of selectable values for the brand review form.
type FormOptions struct {
	ServiceOptions   []string `json:"serviceOptions,omitempty"`
	BudgetOptions    []string `json:"budgetOptions,omitempty"`
	HearAboutOptions []string `json:"hearAboutOptions,omitempty"`
	ReferrerOptions  []string `json:"referrerOptions,omitempty"`
	TimeSlots        []string `json:"timeSlots,omitempty"`
	SessionDuration  int      `json:"sessionDuration,omitempty"`
}

// BrandReviewBooking is a submitted brand review request.
// Created once by the service; status changes afterwards happen only in the CMS.
type BrandReviewBooking struct {
	Type        string        `json:"_type"`
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone,omitempty"`
	Company     string        `json:"company,omitempty"`
	Instagram   string        `json:"instagram,omitempty"`
	Service     string        `json:"service"`
	Budget      string        `json:"budget,omitempty"`
	HearAbout   string        `json:"hearAbout,omitempty"`
	Referrer    string        `json:"referrer,omitempty"`
	Date        string        `json:"date"`
	TimeSlot    string        `json:"timeSlot"`
	Notes       string        `json:"notes,omitempty"`
	SubmittedAt string        `json:"submittedAt"`
	Status      BookingStatus `json:"status"`
}

const BrandReviewBookingType = "brandReviewBooking"
