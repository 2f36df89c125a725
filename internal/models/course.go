package models

// CourseLevel represents the difficulty level of a course
type CourseLevel string

const (
	CourseLevelBeginner     CourseLevel = "Beginner"
	CourseLevelIntermediate CourseLevel = "Intermediate"
	CourseLevelAdvanced     CourseLevel = "Advanced"
)

// CourseLevelAbbreviation maps abbreviations to full course levels
var CourseLevelAbbreviation = map[string]CourseLevel{
	"b": CourseLevelBeginner,
	"i": CourseLevelIntermediate,
	"a": CourseLevelAdvanced,
}

// Course represents a course in the catalog
type Course struct {
	ID           int         `json:"id"`
	Slug         string      `json:"slug"`
	Title        string      `json:"title"`
	ShortSummary string      `json:"shortSummary"`
	Level        CourseLevel `json:"level"`
	PriceCents   int         `json:"priceCents"`
	Published    bool        `json:"published"`
}

// CourseListItem represents a course in list responses
type CourseListItem struct {
	Slug         string      `json:"slug"`
	Title        string      `json:"title"`
	ShortSummary string      `json:"shortSummary,omitempty"`
	Level        CourseLevel `json:"level"`
	PriceCents   int         `json:"priceCents"`
	TotalLessons int         `json:"totalLessons"`
}

// CourseDetailResponse represents a course with enrollment context for detail pages
type CourseDetailResponse struct {
	Slug             string      `json:"slug"`
	Title            string      `json:"title"`
	ShortSummary     string      `json:"shortSummary"`
	Level            CourseLevel `json:"level"`
	PriceCents       int         `json:"priceCents"`
	TotalLessons     int         `json:"totalLessons"`
	Enrolled         bool        `json:"enrolled"`
	CompletedLessons int         `json:"completedLessons"`
}
