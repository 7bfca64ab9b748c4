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

var dishColumns = []string{"ID", "Name", "Description", "Price", "Actions"}

type DishForm struct {
	ID          string
	Name        string
	Description string
	Price       string
}

type DishList struct {
	repo    repository.DishRepository
	screen  ui.Screen
	deletes *DeleteFlow
}

func NewDishList(repo repository.DishRepository, screen ui.Screen, deletes *DeleteFlow) *DishList {
	return &DishList{repo: repo, screen: screen, deletes: deletes}
}

func (l *DishList) Refresh(ctx context.Context) error { return l.Load(ctx) }

func (l *DishList) Load(ctx context.Context) error {
	l.screen.ShowLoading()
	defer l.screen.HideLoading()

	dishes, err := l.repo.GetAll(ctx)
	if err != nil {
		l.screen.Error(err.Error())
		return err
	}
	l.render(dishes)
	return nil
}

func (l *DishList) Search(ctx context.Context, term string) error {
	if term == "" {
		return l.Load(ctx)
	}

	l.screen.ShowLoading()
	defer l.screen.HideLoading()

	dishes, err := l.repo.Search(ctx, term)
	if err != nil {
		l.screen.Error(err.Error())
		return err
	}
	l.render(dishes)
	return nil
}

func (l *DishList) render(dishes []models.Dish) {
	rows := make([][]string, 0, len(dishes))
	for _, d := range dishes {
		rows = append(rows, []string{
			"#" + strconv.Itoa(d.ID),
			d.Name,
			d.Description,
			d.Price.StringFixed(2),
			"edit delete",
		})
	}
	l.screen.RenderTable(ui.Table{Columns: dishColumns, Rows: rows, Empty: "No dishes found"})
}

func (l *DishList) ShowCreateForm() *DishForm {
	l.screen.ShowModal("Add New Dish")
	return &DishForm{}
}

func (l *DishList) ShowEditForm(ctx context.Context, id int) (*DishForm, error) {
	l.screen.ShowLoading()
	defer l.screen.HideLoading()

	dish, err := l.repo.GetByID(ctx, id)
	if err != nil {
		l.screen.Error(err.Error())
		return nil, err
	}

	l.screen.ShowModal("Edit Dish")
	return &DishForm{
		ID:          strconv.Itoa(dish.ID),
		Name:        dish.Name,
		Description: dish.Description,
		Price:       dish.Price.StringFixed(2),
	}, nil
}

func (l *DishList) Submit(ctx context.Context, form DishForm) error {
	price, err := decimal.NewFromString(form.Price)
	if err != nil {
		l.screen.Error("Please enter a valid price")
		return fmt.Errorf("%w: bad price %q", repository.ErrInvalidInput, form.Price)
	}

	dish := models.Dish{
		Name:        sanitize.Clean(form.Name),
		Description: sanitize.Clean(form.Description),
		Price:       price,
	}

	editing := form.ID != ""

	l.screen.ShowLoading()
	defer l.screen.HideLoading()

	if editing {
		dish.ID, err = strconv.Atoi(form.ID)
		if err != nil {
			l.screen.Error("invalid dish id")
			return fmt.Errorf("%w: bad id %q", repository.ErrInvalidInput, form.ID)
		}
		err = l.repo.Update(ctx, &dish)
	} else {
		err = l.repo.Create(ctx, &dish)
	}
	if err != nil {
		l.screen.Error(err.Error())
		return err
	}

	if editing {
		l.screen.Success("Dish updated successfully")
	} else {
		l.screen.Success("Dish created successfully")
	}
	l.screen.CloseModal()
	return l.Load(ctx)
}

func (l *DishList) RequestDelete(id int) {
	l.deletes.Request(KindDish, id)
}
