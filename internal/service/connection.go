package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"masteria.app/panel/common/id"
	"masteria.app/panel/internal/model"
	"masteria.app/panel/internal/store"
)

// ConnectionParams is used for create and, as a patch, for update. On update
// nil fields are left unchanged and ConnectionType is ignored.
type ConnectionParams struct {
	Name               *string
	ConnectionType     model.ConnectionType
	PhoneNumber        *string
	PhoneNumberID      *string
	WabaID             *string
	AccessToken        *string
	WebhookVerifyToken *string
}

type ConnectionService interface {
	List(ctx context.Context, companyID int64, activeOnly bool) ([]model.Connection, error)
	Get(ctx context.Context, companyID, id int64) (*model.Connection, error)
	Create(ctx context.Context, companyID int64, params ConnectionParams) (*model.Connection, error)
	Update(ctx context.Context, companyID, id int64, params ConnectionParams) (*model.Connection, error)
	SetActive(ctx context.Context, companyID, id int64, active bool) (*model.Connection, error)
	Delete(ctx context.Context, companyID, id int64) error
}

type connectionService struct {
	connections store.ConnectionStore
}

func NewConnectionService(connections store.ConnectionStore) ConnectionService {
	return &connectionService{connections: connections}
}

func (s *connectionService) List(ctx context.Context, companyID int64, activeOnly bool) ([]model.Connection, error) {
	conns, err := s.connections.List(ctx, companyID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}
	return conns, nil
}

func (s *connectionService) Get(ctx context.Context, companyID, connID int64) (*model.Connection, error) {
	conn, err := s.connections.GetByID(ctx, companyID, connID)
	if err != nil {
		return nil, fmt.Errorf("getting connection: %w", err)
	}
	return conn, nil
}

func (s *connectionService) Create(ctx context.Context, companyID int64, params ConnectionParams) (*model.Connection, error) {
	conn := &model.Connection{
		ID:             id.New(),
		CompanyID:      companyID,
		ConnectionType: params.ConnectionType,
		IsActive:       true,
	}
	applyConnectionParams(conn, params)

	if err := validateConnection(conn); err != nil {
		return nil, err
	}

	if err := s.connections.Create(ctx, conn); err != nil {
		return nil, fmt.Errorf("creating connection: %w", err)
	}

	slog.InfoContext(ctx, "connection created", "connection_id", conn.ID, "type", conn.ConnectionType)
	return conn, nil
}

func (s *connectionService) Update(ctx context.Context, companyID, connID int64, params ConnectionParams) (*model.Connection, error) {
	conn, err := s.connections.GetByID(ctx, companyID, connID)
	if err != nil {
		return nil, fmt.Errorf("getting connection: %w", err)
	}

	applyConnectionParams(conn, params)
	if err := validateConnection(conn); err != nil {
		return nil, err
	}

	if err := s.connections.Update(ctx, conn); err != nil {
		return nil, fmt.Errorf("updating connection: %w", err)
	}
	return conn, nil
}

func (s *connectionService) SetActive(ctx context.Context, companyID, connID int64, active bool) (*model.Connection, error) {
	conn, err := s.connections.SetActive(ctx, companyID, connID, active)
	if err != nil {
		return nil, fmt.Errorf("setting connection active: %w", err)
	}
	return conn, nil
}

func (s *connectionService) Delete(ctx context.Context, companyID, connID int64) error {
	if err := s.connections.Delete(ctx, companyID, connID); err != nil {
		return fmt.Errorf("deleting connection: %w", err)
	}
	slog.InfoContext(ctx, "connection deleted", "connection_id", connID)
	return nil
}

func applyConnectionParams(conn *model.Connection, p ConnectionParams) {
	if p.Name != nil {
		conn.Name = strings.TrimSpace(*p.Name)
	}
	if p.PhoneNumber != nil {
		conn.PhoneNumber = strings.TrimSpace(*p.PhoneNumber)
	}
	if p.PhoneNumberID != nil {
		conn.PhoneNumberID = emptyToNil(*p.PhoneNumberID)
	}
	if p.WabaID != nil {
		conn.WabaID = emptyToNil(*p.WabaID)
	}
	if p.AccessToken != nil {
		conn.AccessToken = emptyToNil(*p.AccessToken)
	}
	if p.WebhookVerifyToken != nil {
		conn.WebhookVerifyToken = emptyToNil(*p.WebhookVerifyToken)
	}
}

func validateConnection(conn *model.Connection) error {
	if conn.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !conn.ConnectionType.Valid() {
		return fmt.Errorf("%w: connection_type must be meta_api or baileys", ErrInvalidInput)
	}
	if conn.PhoneNumber == "" {
		return fmt.Errorf("%w: phone_number is required", ErrInvalidInput)
	}
	// The Cloud API addresses numbers by id, not by the phone number itself.
	if conn.ConnectionType == model.ConnectionTypeMetaAPI && conn.PhoneNumberID == nil {
		return fmt.Errorf("%w: phone_number_id is required for meta_api connections", ErrInvalidInput)
	}
	return nil
}

func emptyToNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
