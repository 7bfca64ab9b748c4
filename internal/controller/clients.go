package controller

import (
	"context"
	"fmt"
	"strconv"

	"restaurant-admin/internal/models"
	"restaurant-admin/internal/repository"
	"restaurant-admin/internal/sanitize"
	"restaurant-admin/internal/ui"
)

var clientColumns = []string{"ID", "Name", "Email", "Phone", "Actions"}

// ClientForm mirrors the client modal fields. An empty ID means create.
type ClientForm struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type ClientList struct {
	repo    repository.ClientRepository
	screen  ui.Screen
	deletes *DeleteFlow
}

func NewClientList(repo repository.ClientRepository, screen ui.Screen, deletes *DeleteFlow) *ClientList {
	return &ClientList{repo: repo, screen: screen, deletes: deletes}
}

func (l *ClientList) Refresh(ctx context.Context) error { return l.Load(ctx) }

func (l *ClientList) Load(ctx context.Context) error {
	l.screen.ShowLoading()
	defer l.screen.HideLoading()

	clients, err := l.repo.GetAll(ctx)
	if err != nil {
		l.screen.Error(err.Error())
		return err
	}
	l.render(clients)
	return nil
}

func (l *ClientList) Search(ctx context.Context, term string) error {
	if term == "" {
		return l.Load(ctx)
	}

	l.screen.ShowLoading()
	defer l.screen.HideLoading()

	clients, err := l.repo.Search(ctx, term)
	if err != nil {
		l.screen.Error(err.Error())
		return err
	}
	l.render(clients)
	return nil
}

func (l *ClientList) render(clients []models.Client) {
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{
			"#" + strconv.Itoa(c.ID),
			c.FullName(),
			orDash(c.Email),
			orDash(c.Phone),
			"edit delete",
		})
	}
	l.screen.RenderTable(ui.Table{Columns: clientColumns, Rows: rows, Empty: "No clients found"})
}

func (l *ClientList) ShowCreateForm() *ClientForm {
	l.screen.ShowModal("Add New Client")
	return &ClientForm{}
}

func (l *ClientList) ShowEditForm(ctx context.Context, id int) (*ClientForm, error) {
	l.screen.ShowLoading()
	defer l.screen.HideLoading()

	client, err := l.repo.GetByID(ctx, id)
	if err != nil {
		l.screen.Error(err.Error())
		return nil, err
	}

	l.screen.ShowModal("Edit Client")
	return &ClientForm{
		ID:        strconv.Itoa(client.ID),
		FirstName: client.FirstName,
		LastName:  client.LastName,
		Email:     client.Email,
		Phone:     client.Phone,
	}, nil
}

func (l *ClientList) Submit(ctx context.Context, form ClientForm) error {
	client := models.Client{
		FirstName: sanitize.Clean(form.FirstName),
		LastName:  sanitize.Clean(form.LastName),
		Email:     sanitize.Clean(form.Email),
		Phone:     sanitize.Clean(form.Phone),
	}

	editing := form.ID != ""

	l.screen.ShowLoading()
	defer l.screen.HideLoading()

	var err error
	if editing {
		client.ID, err = strconv.Atoi(form.ID)
		if err != nil {
			l.screen.Error("invalid client id")
			return fmt.Errorf("%w: bad id %q", repository.ErrInvalidInput, form.ID)
		}
		err = l.repo.Update(ctx, &client)
	} else {
		err = l.repo.Create(ctx, &client)
	}
	if err != nil {
		l.screen.Error(err.Error())
		return err
	}

	if editing {
		l.screen.Success("Client updated successfully")
	} else {
		l.screen.Success("Client created successfully")
	}
	l.screen.CloseModal()
	return l.Load(ctx)
}

func (l *ClientList) RequestDelete(id int) {
	l.deletes.Request(KindClient, id)
}
