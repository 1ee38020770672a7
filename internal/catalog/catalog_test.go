package catalog

import (
	"testing"

	"github.com/mlearn/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_CourseByID(t *testing.T) {
	cat := New()

	course, err := cat.CourseByID(1)
	require.NoError(t, err)
	assert.Equal(t, 1, course.ID)
	assert.NotEmpty(t, course.Title)

	_, err = cat.CourseByID(999)
	assert.ErrorIs(t, err, models.ErrCourseNotFound)
}

func TestCatalog_PlanByName(t *testing.T) {
	cat := New()

	plan, err := cat.PlanByName("gold")
	require.NoError(t, err)
	assert.Equal(t, "Gold", plan.Name)

	_, err = cat.PlanByName("Platinum")
	assert.ErrorIs(t, err, models.ErrPlanNotFound)
}

func TestCatalog_FilterCourses(t *testing.T) {
	courses := []models.Course{
		{ID: 1, Title: "UI Design Masterclass", Instructor: "Alice Sommer"},
		{ID: 2, Title: "Intro to Go", Instructor: "Bob Keller"},
	}
	cat := NewWithData(courses, nil)

	tests := []struct {
		name        string
		query       string
		expectedIDs []int
	}{
		{name: "empty query matches all", query: "", expectedIDs: []int{1, 2}},
		{name: "title match", query: "design", expectedIDs: []int{1}},
		{name: "instructor match", query: "ali", expectedIDs: []int{1}},
		{name: "case insensitive", query: "INTRO", expectedIDs: []int{2}},
		{name: "no match", query: "rust", expectedIDs: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := cat.FilterCourses(tt.query)
			ids := make([]int, 0, len(matched))
			for _, course := range matched {
				ids = append(ids, course.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestTotalLessons(t *testing.T) {
	course := &models.Course{
		Curriculum: []models.CurriculumModule{
			{Lessons: []models.Lesson{{Title: "A"}, {Title: "B"}}},
			{Lessons: []models.Lesson{{Title: "C"}}},
		},
	}

	assert.Equal(t, 3, TotalLessons(course))
	assert.Equal(t, 0, TotalLessons(&models.Course{}))
}

func TestLessonIDs(t *testing.T) {
	course := &models.Course{
		Curriculum: []models.CurriculumModule{
			{Lessons: []models.Lesson{{Title: "A"}, {Title: "B"}}},
			{Lessons: []models.Lesson{{Title: "C"}}},
		},
	}

	assert.Equal(t, "0-1", LessonID(0, 1))
	assert.True(t, HasLesson(course, "0-0"))
	assert.True(t, HasLesson(course, "1-0"))
	assert.False(t, HasLesson(course, "1-1"))
	assert.False(t, HasLesson(course, "2-0"))
}

func TestBuiltInCatalogIsWellFormed(t *testing.T) {
	cat := New()

	seen := map[int]bool{}
	for _, course := range cat.Courses() {
		assert.False(t, seen[course.ID], "duplicate course ID %d", course.ID)
		seen[course.ID] = true
		assert.NotEmpty(t, course.Title)
		assert.NotEmpty(t, course.Instructor)
		assert.GreaterOrEqual(t, course.Price, 0.0)
	}

	require.NotEmpty(t, cat.Plans())
	for _, plan := range cat.Plans() {
		assert.NotEmpty(t, plan.Name)
		assert.NotEmpty(t, plan.Price)
		assert.GreaterOrEqual(t, plan.CourseDiscount, 0.0)
		assert.LessOrEqual(t, plan.CourseDiscount, 1.0)
	}
}
