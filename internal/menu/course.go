package menu

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Course is the meal category of a dish.
type Course int

const (
	CourseStarter Course = iota
	CourseMain
	CourseDessert
	CourseDrink
)

// DefaultCourse is preselected on a fresh draft.
const DefaultCourse = CourseMain

var courseNames = [...]string{
	CourseStarter: "Starter",
	CourseMain:    "Main",
	CourseDessert: "Dessert",
	CourseDrink:   "Drink",
}

// Courses returns every course in display order.
func Courses() []Course {
	return []Course{CourseStarter, CourseMain, CourseDessert, CourseDrink}
}

func (c Course) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Course(%d)", int(c))
	}
	return courseNames[c]
}

// Valid reports whether c is one of the four known courses.
func (c Course) Valid() bool {
	return c >= CourseStarter && c <= CourseDrink
}

// Next returns the following course, wrapping after Drink.
func (c Course) Next() Course {
	if !c.Valid() {
		return DefaultCourse
	}
	return Course((int(c) + 1) % len(courseNames))
}

// Prev returns the preceding course, wrapping before Starter.
func (c Course) Prev() Course {
	if !c.Valid() {
		return DefaultCourse
	}
	n := len(courseNames)
	return Course((int(c) - 1 + n) % n)
}

// ParseCourse resolves a course by name, ignoring case and surrounding space.
func ParseCourse(name string) (Course, error) {
	trimmed := strings.TrimSpace(name)
	for _, c := range Courses() {
		if strings.EqualFold(trimmed, c.String()) {
			return c, nil
		}
	}
	return DefaultCourse, fmt.Errorf("unknown course %q", name)
}

// MatchCourse picks the course whose name best matches a typed fragment.
// A fragment that is a prefix of a course name always wins over looser
// fuzzy matches.
func MatchCourse(query string) (Course, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return DefaultCourse, false
	}
	names := make([]string, 0, len(courseNames))
	for _, c := range Courses() {
		if strings.HasPrefix(strings.ToLower(c.String()), strings.ToLower(query)) {
			return c, true
		}
		names = append(names, c.String())
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	if len(ranks) == 0 {
		return DefaultCourse, false
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance || (r.Distance == best.Distance && r.OriginalIndex < best.OriginalIndex) {
			best = r
		}
	}
	return Courses()[best.OriginalIndex], true
}
