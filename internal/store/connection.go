package store

import (
	"context"

	"masteria.app/panel/core/db/sqlc"
	"masteria.app/panel/internal/model"
)

type connectionStore struct {
	queries *sqlc.Queries
}

func newConnectionStore(queries *sqlc.Queries) ConnectionStore {
	return &connectionStore{queries: queries}
}

func (s *connectionStore) GetByID(ctx context.Context, companyID, id int64) (*model.Connection, error) {
	row, err := s.queries.GetConnection(ctx, sqlc.GetConnectionParams{ID: id, CompanyID: companyID})
	if err != nil {
		return nil, mapErr(err)
	}
	return toConnectionModel(row), nil
}

func (s *connectionStore) List(ctx context.Context, companyID int64, activeOnly bool) ([]model.Connection, error) {
	var (
		rows []sqlc.Connection
		err  error
	)
	if activeOnly {
		rows, err = s.queries.ListActiveConnectionsByCompany(ctx, companyID)
	} else {
		rows, err = s.queries.ListConnectionsByCompany(ctx, companyID)
	}
	if err != nil {
		return nil, err
	}
	conns := make([]model.Connection, len(rows))
	for i, row := range rows {
		conns[i] = *toConnectionModel(row)
	}
	return conns, nil
}

func (s *connectionStore) Create(ctx context.Context, conn *model.Connection) error {
	row, err := s.queries.CreateConnection(ctx, sqlc.CreateConnectionParams{
		ID:                 conn.ID,
		CompanyID:          conn.CompanyID,
		Name:               conn.Name,
		ConnectionType:     string(conn.ConnectionType),
		PhoneNumber:        conn.PhoneNumber,
		PhoneNumberID:      conn.PhoneNumberID,
		WabaID:             conn.WabaID,
		AccessToken:        conn.AccessToken,
		WebhookVerifyToken: conn.WebhookVerifyToken,
		IsActive:           conn.IsActive,
	})
	if err != nil {
		return mapErr(err)
	}
	*conn = *toConnectionModel(row)
	return nil
}

func (s *connectionStore) Update(ctx context.Context, conn *model.Connection) error {
	row, err := s.queries.UpdateConnection(ctx, sqlc.UpdateConnectionParams{
		ID:                 conn.ID,
		CompanyID:          conn.CompanyID,
		Name:               conn.Name,
		PhoneNumber:        conn.PhoneNumber,
		PhoneNumberID:      conn.PhoneNumberID,
		WabaID:             conn.WabaID,
		AccessToken:        conn.AccessToken,
		WebhookVerifyToken: conn.WebhookVerifyToken,
	})
	if err != nil {
		return mapErr(err)
	}
	*conn = *toConnectionModel(row)
	return nil
}

func (s *connectionStore) SetActive(ctx context.Context, companyID, id int64, active bool) (*model.Connection, error) {
	row, err := s.queries.SetConnectionActive(ctx, sqlc.SetConnectionActiveParams{
		ID:        id,
		CompanyID: companyID,
		IsActive:  active,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toConnectionModel(row), nil
}

func (s *connectionStore) Delete(ctx context.Context, companyID, id int64) error {
	return affected(s.queries.DeleteConnection(ctx, sqlc.DeleteConnectionParams{ID: id, CompanyID: companyID}))
}

func toConnectionModel(row sqlc.Connection) *model.Connection {
	return &model.Connection{
		ID:                 row.ID,
		CompanyID:          row.CompanyID,
		Name:               row.Name,
		ConnectionType:     model.ConnectionType(row.ConnectionType),
		PhoneNumber:        row.PhoneNumber,
		PhoneNumberID:      row.PhoneNumberID,
		WabaID:             row.WabaID,
		AccessToken:        row.AccessToken,
		WebhookVerifyToken: row.WebhookVerifyToken,
		IsActive:           row.IsActive,
		CreatedAt:          row.CreatedAt.Time,
		UpdatedAt:          row.UpdatedAt.Time,
	}
}
