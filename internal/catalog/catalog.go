// Package catalog holds the static course and pricing-plan catalogs.
// Catalog data is build-time reference data and is never mutated.
package catalog

import (
	"fmt"
	"strings"

	"github.com/mlearn/backend/internal/models"
)

// Catalog provides read-only access to the course and plan catalogs
type Catalog struct {
	courses []models.Course
	plans   []models.PricingPlan
}

// New creates a catalog backed by the built-in course and plan data
func New() *Catalog {
	return &Catalog{
		courses: coursesData,
		plans:   pricingPlansData,
	}
}

// NewWithData creates a catalog with the given data (used in tests)
func NewWithData(courses []models.Course, plans []models.PricingPlan) *Catalog {
	return &Catalog{
		courses: courses,
		plans:   plans,
	}
}

// Courses returns all courses in catalog order
func (c *Catalog) Courses() []models.Course {
	return c.courses
}

// Plans returns all pricing plans in catalog order
func (c *Catalog) Plans() []models.PricingPlan {
	return c.plans
}

// CourseByID retrieves a course by ID
//
// Returns models.ErrCourseNotFound if no course with this ID exists.
func (c *Catalog) CourseByID(id int) (*models.Course, error) {
	for i := range c.courses {
		if c.courses[i].ID == id {
			return &c.courses[i], nil
		}
	}
	return nil, models.ErrCourseNotFound
}

// PlanByName retrieves a pricing plan by name
//
// Returns models.ErrPlanNotFound if no plan with this name exists.
func (c *Catalog) PlanByName(name string) (*models.PricingPlan, error) {
	for i := range c.plans {
		if strings.EqualFold(c.plans[i].Name, name) {
			return &c.plans[i], nil
		}
	}
	return nil, models.ErrPlanNotFound
}

// FilterCourses returns the courses whose title or instructor contains the
// query, case-insensitively. An empty query matches everything.
func (c *Catalog) FilterCourses(query string) []models.Course {
	if query == "" {
		return c.courses
	}

	q := strings.ToLower(query)
	var matched []models.Course
	for _, course := range c.courses {
		if strings.Contains(strings.ToLower(course.Title), q) ||
			strings.Contains(strings.ToLower(course.Instructor), q) {
			matched = append(matched, course)
		}
	}
	return matched
}

// TotalLessons counts all lessons across the course curriculum
func TotalLessons(course *models.Course) int {
	total := 0
	for _, module := range course.Curriculum {
		total += len(module.Lessons)
	}
	return total
}

// LessonID builds the stable lesson identifier for a curriculum position.
// Identifiers are unique within a course while the curriculum ordering is unchanged.
func LessonID(moduleIndex, lessonIndex int) string {
	return fmt.Sprintf("%d-%d", moduleIndex, lessonIndex)
}

// HasLesson reports whether the lesson ID refers to an existing curriculum position
func HasLesson(course *models.Course, lessonID string) bool {
	for mi, module := range course.Curriculum {
		for li := range module.Lessons {
			if LessonID(mi, li) == lessonID {
				return true
			}
		}
	}
	return false
}
