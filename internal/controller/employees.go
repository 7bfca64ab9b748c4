package controller

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"restaurant-admin/internal/models"
	"restaurant-admin/internal/repository"
	"restaurant-admin/internal/sanitize"
	"restaurant-admin/internal/ui"
)

var employeeColumns = []string{"ID", "Name", "Position", "Salary", "Actions"}

type EmployeeForm struct {
	ID        string
	FirstName string
	LastName  string
	Position  string
	Salary    string
}

type EmployeeList struct {
	repo    repository.EmployeeRepository
	screen  ui.Screen
	deletes *DeleteFlow
}

func NewEmployeeList(repo repository.EmployeeRepository, screen ui.Screen, deletes *DeleteFlow) *EmployeeList {
	return &EmployeeList{repo: repo, screen: screen, deletes: deletes}
}

func (l *EmployeeList) Refresh(ctx context.Context) error { return l.Load(ctx) }

func (l *EmployeeList) Load(ctx context.Context) error {
	l.screen.ShowLoading()
	defer l.screen.HideLoading()

	employees, err := l.repo.GetAll(ctx)
	if err != nil {
		l.screen.Error(err.Error())
		return err
	}
	l.render(employees)
	return nil
}

func (l *EmployeeList) Search(ctx context.Context, term string) error {
	if term == "" {
		return l.Load(ctx)
	}

	l.screen.ShowLoading()
	defer l.screen.HideLoading()

	employees, err := l.repo.Search(ctx, term)
	if err != nil {
		l.screen.Error(err.Error())
		return err
	}
	l.render(employees)
	return nil
}

func (l *EmployeeList) render(employees []models.Employee) {
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{
			"#" + strconv.Itoa(e.ID),
			e.FullName(),
			e.Position,
			e.Salary.StringFixed(2),
			"edit delete",
		})
	}
	l.screen.RenderTable(ui.Table{Columns: employeeColumns, Rows: rows, Empty: "No employees found"})
}

func (l *EmployeeList) ShowCreateForm() *EmployeeForm {
	l.screen.ShowModal("Add New Employee")
	return &EmployeeForm{}
}

func (l *EmployeeList) ShowEditForm(ctx context.Context, id int) (*EmployeeForm, error) {
	l.screen.ShowLoading()
	defer l.screen.HideLoading()

	employee, err := l.repo.GetByID(ctx, id)
	if err != nil {
		l.screen.Error(err.Error())
		return nil, err
	}

	l.screen.ShowModal("Edit Employee")
	return &EmployeeForm{
		ID:        strconv.Itoa(employee.ID),
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		Position:  employee.Position,
		Salary:    employee.Salary.StringFixed(2),
	}, nil
}

func (l *EmployeeList) Submit(ctx context.Context, form EmployeeForm) error {
	salary, err := decimal.NewFromString(form.Salary)
	if err != nil {
		l.screen.Error("Please enter a valid salary")
		return fmt.Errorf("%w: bad salary %q", repository.ErrInvalidInput, form.Salary)
	}

	employee := models.Employee{
		FirstName: sanitize.Clean(form.FirstName),
		LastName:  sanitize.Clean(form.LastName),
		Position:  sanitize.Clean(form.Position),
		Salary:    salary,
	}

	editing := form.ID != ""

	l.screen.ShowLoading()
	defer l.screen.HideLoading()

	if editing {
		employee.ID, err = strconv.Atoi(form.ID)
		if err != nil {
			l.screen.Error("invalid employee id")
			return fmt.Errorf("%w: bad id %q", repository.ErrInvalidInput, form.ID)
		}
		err = l.repo.Update(ctx, &employee)
	} else {
		err = l.repo.Create(ctx, &employee)
	}
	if err != nil {
		l.screen.Error(err.Error())
		return err
	}

	if editing {
		l.screen.Success("Employee updated successfully")
	} else {
		l.screen.Success("Employee created successfully")
	}
	l.screen.CloseModal()
	return l.Load(ctx)
}

func (l *EmployeeList) RequestDelete(id int) {
	l.deletes.Request(KindEmployee, id)
}
