package domain

import (
	"fmt"
	"pattern-lab/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Employee is the item stored in the sample collection walked by the iterator driver.
type Employee struct {
	ID   int    `validate:"gte=0"`
	Name string `validate:"required,max=128"`
}

func NewEmployee(name string, id int) (Employee, error) {
	employee := Employee{ID: id, Name: name}
	if err := validate.Struct(employee); err != nil {
		return Employee{}, fmt.Errorf("%w: invalid employee: %v", errors.ErrPreconditionViolation, err)
	}
	return employee, nil
}
