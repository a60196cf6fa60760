package content

import "fmt"

const projectCardFields = `
    _id,
    name,
    "slug": slug.current,
    category,
    tags,
    mainImage,
    shortDescription,
    order,
    _createdAt`

const imageFields = `{
      asset,
      alt,
      caption
    }`

var (
	allProjectsQuery = `*[_type == "project"] | order(order asc, _createdAt desc) {` + projectCardFields + `
  }`

	projectBySlugQuery = `*[_type == "project" && slug.current == $slug][0] {` + projectCardFields + `,
    fullDescription,
    date,
    location,
    seoTitle,
    seoDescription,
    seoImage,
    gallery[] ` + imageFields + `,
    contentSections[] {
      _key,
      sectionType,
      heading,
      content,
      image ` + imageFields + `,
      images[] ` + imageFields + `
    },
    "prevProject": *[_type == "project" && _createdAt < ^._createdAt] | order(_createdAt desc)[0] {
      name,
      "slug": slug.current,
      mainImage
    },
    "nextProject": *[_type == "project" && _createdAt > ^._createdAt] | order(_createdAt asc)[0] {
      name,
      "slug": slug.current,
      mainImage
    }
  }`
)

const (
	showreelSlidesQuery = `*[_type == "showreelSlide"] | order(order asc) {
    _id,
    title,
    subtitle,
    image
  }`

	teamMembersQuery = `*[_type == "teamMember"] | order(order asc) {
    _id,
    name,
    role,
    image,
    instagramUrl,
    bio
  }`

	servicesQuery = `*[_type == "service"] | order(pillarNumber asc) {
    _id,
    pillarNumber,
    heading,
    description,
    image,
    cards[] {
      title,
      description
    }
  }`

	designCategoriesQuery = `*[_type == "designCategory"] | order(order asc) {
    _id,
    name
  }`

	socialLinksQuery = `*[_type == "socialLink"] | order(order asc) {
    _id,
    platform,
    url,
    iconName
  }`

	siteSettingsQuery = `*[_type == "siteSettings"][0] {
    companyName,
    email,
    phone,
    location,
    timezone,
    heroTitle,
    heroSubtitle,
    heroBackgroundImage,
    heroImages,
    footerOverlayTitle,
    footerOverlaySubtitle,
    footerHoverPlaceholder,
    footerWorkingHeading,
    footerContactsHeading,
    footerLocationHeading,
    footerScrollTopText,
    navHomeLabel,
    navBrandReviewLabel,
    navAboutLabel,
    navWorkLabel,
    navContactLabel,
    seoDefaultTitle,
    seoDefaultDescription,
    seoDefaultImage
  }`

	formOptionsQuery = `*[_type == "formOptions"][0] {
    serviceOptions,
    budgetOptions,
    hearAboutOptions,
    referrerOptions,
    timeSlots,
    sessionDuration
  }`

	navigationLinksQuery = `*[_type == "navigationLink"] | order(order asc) {
    _id,
    label,
    path
  }`
)

// recentProjectsQuery slices server side; limit is an int so it is safe to format in.
func recentProjectsQuery(limit int) string {
	return fmt.Sprintf(`*[_type == "project"] | order(_createdAt desc)[0...%d] {`+projectCardFields+`
  }`, limit)
}

const pageQuery = `*[_type == $type][0]`
