package models

// Lesson represents a single lesson inside a curriculum module
type Lesson struct {
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// CurriculumModule represents an ordered group of lessons in a course
type CurriculumModule struct {
	Module  string   `json:"module"`
	Lessons []Lesson `json:"lessons"`
}

// Course represents a course in the static catalog.
// Courses are immutable reference data; the ID is stable and unique.
type Course struct {
	ID              int                `json:"id"`
	Title           string             `json:"title"`
	Instructor      string             `json:"instructor"`
	ImageURL        string             `json:"imageUrl"`
	VideoURL        string             `json:"videoUrl"`
	Price           float64            `json:"price"`
	Description     string             `json:"description"`
	Curriculum      []CurriculumModule `json:"curriculum"`
	InstructorBio   string             `json:"instructorBio"`
	InstructorImage string             `json:"instructorImage"`
}

// CourseListItem represents a course in list responses
type CourseListItem struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	Instructor      string  `json:"instructor"`
	ImageURL        string  `json:"imageUrl"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discountedPrice"`
}

// CourseDetailResponse represents a course with progress and pricing details
type CourseDetailResponse struct {
	Course               Course   `json:"course"`
	TotalLessons         int      `json:"totalLessons"`
	CompletedLessons     []string `json:"completedLessons"`
	CompletionPercentage int      `json:"completionPercentage"`
	DiscountedPrice      float64  `json:"discountedPrice"`
	InCart               bool     `json:"inCart"`
	InWishlist           bool     `json:"inWishlist"`
}

// ToggleLessonResponse reports the outcome of toggling a lesson's completion.
// DiscountUnlocked is true only on the response that crossed the unlock
// threshold; recomputation never signals it again.
type ToggleLessonResponse struct {
	LessonID             string `json:"lessonId"`
	Completed            bool   `json:"completed"`
	CompletionPercentage int    `json:"completionPercentage"`
	DiscountUnlocked     bool   `json:"discountUnlocked"`
}
