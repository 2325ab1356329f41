package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/paulobof/sistema-bancario/internal/logger"
	"github.com/paulobof/sistema-bancario/models"
)

func newTestClientRepo(t *testing.T) (*clientRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &clientRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func uniqueViolation() error {
	return sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintPrimaryKey,
	}
}

func TestCreateClient_Success(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	ctx := context.Background()
	client := models.Client{
		CPF:       "11122233344",
		Name:      "Maria Oliveira Costa",
		BirthDate: "22/07/1990",
		Address:   "Avenida Paulista - 456 - Bela Vista - São Paulo/SP",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"cpf", "name", "birth_date", "address", "created_at"}).
		AddRow(client.CPF, client.Name, client.BirthDate, client.Address, now)

	mock.ExpectQuery("INSERT INTO clients").
		WithArgs(client.CPF, client.Name, client.BirthDate, client.Address).
		WillReturnRows(rows)

	created, err := repo.CreateClient(ctx, client)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CPF != client.CPF {
		t.Errorf("expected cpf %s, got %s", client.CPF, created.CPF)
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("expected created_at %v, got %v", now, created.CreatedAt)
	}
}

func TestCreateClient_DuplicateCPF(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	ctx := context.Background()
	client := models.Client{CPF: "11122233344"}

	mock.ExpectQuery("INSERT INTO clients").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(uniqueViolation())

	_, err := repo.CreateClient(ctx, client)
	if !errors.Is(err, ErrClientAlreadyExists) {
		t.Fatalf("expected ErrClientAlreadyExists, got %v", err)
	}
}

func TestCreateClient_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO clients").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db io error"))

	_, err := repo.CreateClient(ctx, models.Client{CPF: "11122233344"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindClient_Success(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"cpf", "name", "birth_date", "address", "created_at"}).
		AddRow("11122233344", "Maria Oliveira Costa", "22/07/1990", "Avenida Paulista - 456", now)

	mock.ExpectQuery("SELECT (.+) FROM clients").
		WithArgs("11122233344").
		WillReturnRows(rows)

	found, err := repo.FindClient(ctx, "11122233344")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != "Maria Oliveira Costa" {
		t.Errorf("expected name Maria Oliveira Costa, got %s", found.Name)
	}
}

func TestFindClient_NotFound(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM clients").
		WithArgs("99999999999").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindClient(ctx, "99999999999")
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestListClients_Success(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"cpf", "name", "birth_date", "address", "created_at", "account_count"}).
		AddRow("11122233344", "Maria Oliveira Costa", "22/07/1990", "Avenida Paulista - 456", now, 2).
		AddRow("55566677788", "Pedro Souza Lima", "08/12/1978", "Praça da Liberdade - 789", now, 0)

	mock.ExpectQuery("SELECT (.+) FROM clients c").
		WillReturnRows(rows)

	clients, err := repo.ListClients(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clients) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(clients))
	}
	if clients[0].AccountCount != 2 {
		t.Errorf("expected account count 2, got %d", clients[0].AccountCount)
	}
	if clients[1].AccountCount != 0 {
		t.Errorf("expected account count 0, got %d", clients[1].AccountCount)
	}
}

func TestListClients_Empty(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"cpf", "name", "birth_date", "address", "created_at", "account_count"})

	mock.ExpectQuery("SELECT (.+) FROM clients c").
		WillReturnRows(rows)

	clients, err := repo.ListClients(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clients) != 0 {
		t.Fatalf("expected empty list, got %d", len(clients))
	}
}

func TestDeleteClient_Success(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM clients").
		WithArgs("11122233344").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteClient(ctx, "11122233344"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteClient_NotFound(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM clients").
		WithArgs("99999999999").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteClient(ctx, "99999999999")
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}
