package router

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"billed/internal/mockstore"
	"billed/internal/newbill"
	"billed/internal/routes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNavigate_Bills(t *testing.T) {
	var buf bytes.Buffer
	store := mockstore.New()
	r := New(context.Background(), store, &buf, zap.NewNop())

	r.Navigate(routes.Bills)

	assert.Equal(t, routes.Bills, r.Current())
	assert.Equal(t, 1, store.ListCalls())
	assert.Contains(t, buf.String(), "Mes notes de frais")
	assert.Contains(t, buf.String(), "encore")
}

func TestNavigate_BillsListFailure(t *testing.T) {
	for _, msg := range []string{"Erreur 500", "Erreur 404"} {
		t.Run(msg, func(t *testing.T) {
			var buf bytes.Buffer
			store := mockstore.New()
			store.FailLists(errors.New(msg))

			New(context.Background(), store, &buf, zap.NewNop()).Navigate(routes.Bills)

			assert.Contains(t, buf.String(), msg)
		})
	}
}

func TestNavigate_NewBillHighlightsMailIcon(t *testing.T) {
	var buf bytes.Buffer
	New(context.Background(), mockstore.New(), &buf, zap.NewNop()).Navigate(routes.NewBill)

	assert.Contains(t, buf.String(), `data-testid="icon-mail" class="active-icon"`)
	assert.Contains(t, buf.String(), `data-testid="form-new-bill"`)
}

func TestNavigate_UnknownRoute(t *testing.T) {
	var buf bytes.Buffer
	r := New(context.Background(), mockstore.New(), &buf, zap.NewNop())

	r.Navigate("#nowhere")

	assert.Equal(t, routes.Login, r.Current())
	assert.Contains(t, buf.String(), `data-testid="form-employee"`)
}

func TestSubmitThenNavigateToBills(t *testing.T) {
	var buf bytes.Buffer
	store := mockstore.New()
	r := New(context.Background(), store, &buf, zap.NewNop())

	ctrl := newbill.NewController(newbill.Deps{
		Session:   session{user: newbill.Session{Type: newbill.UserTypeEmployee, Email: "a@a"}},
		Store:     store,
		Navigator: r,
		Form:      form{},
	})

	ctrl.OnFileSelected(context.Background(), newbill.SelectedFile{Name: "image.jpg", Content: []byte("image")})
	ctrl.Wait()
	ctrl.OnSubmit(context.Background())
	ctrl.Wait()

	require.Equal(t, routes.Bills, r.Current())
	assert.Contains(t, buf.String(), "Mes notes de frais")
	assert.Len(t, store.Creates(), 1)
}

type session struct{ user newbill.Session }

func (s session) User() (*newbill.Session, bool) { return &s.user, true }

type form struct{}

func (form) FieldValues() newbill.BillFields {
	return newbill.BillFields{ExpenseType: "Transports", Name: "taxi", Date: "2022-01-01", Amount: "30"}
}
