package state

import (
	"errors"
	"strings"

	"github.com/atomicstack/menu-editor/internal/menu"
)

var (
	ErrNameRequired  = errors.New("dish name required")
	ErrPriceRequired = errors.New("price required")
)

// Draft is the uncommitted content of the add form.
type Draft struct {
	Name   string
	Price  string
	Course menu.Course
}

// EmptyDraft returns the form defaults.
func EmptyDraft() Draft {
	return Draft{Course: menu.DefaultCourse}
}

// Validate reports every missing field.
func (d Draft) Validate() error {
	var errs []error
	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, ErrNameRequired)
	}
	if strings.TrimSpace(d.Price) == "" {
		errs = append(errs, ErrPriceRequired)
	}
	return errors.Join(errs...)
}

// item builds the stored form of the draft.
func (d Draft) item(id string) menu.Item {
	return menu.Item{
		ID:     id,
		Name:   strings.TrimSpace(d.Name),
		Price:  strings.TrimSpace(d.Price),
		Course: d.Course,
	}
}
