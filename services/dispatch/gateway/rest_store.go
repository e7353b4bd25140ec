package gateway

import (
	"context"
	"fmt"
	nethttp "net/http"
	"net/url"

	httppkg "github.com/piresc/nebengjek-dispatch/internal/pkg/http"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/models"
	"github.com/piresc/nebengjek-dispatch/services/dispatch"
)

const (
	restPrefix = "/rest/v1/"
	rpcPrefix  = "/rest/v1/rpc/"

	preferHeader         = "Prefer"
	returnRepresentation = "return=representation"
)

// restOrder is the server-side ordering of each table
var restOrder = map[string]string{
	models.TableCompanies: "name.asc",
	models.TableDrivers:   "name.asc",
	models.TableCarTypes:  "name.asc",
	models.TableProjects:  "created_at.desc",
	models.TablePayments:  "created_at.desc",
}

// RESTStore implements dispatch.Store against a PostgREST-compatible API
type RESTStore struct {
	client *httppkg.Client
}

// NewRESTStore creates a store on client
func NewRESTStore(client *httppkg.Client) *RESTStore {
	return &RESTStore{client: client}
}

var _ dispatch.Store = (*RESTStore)(nil)

func tableEndpoint(table string, filters url.Values) (string, error) {
	if _, ok := restOrder[table]; !ok {
		return "", fmt.Errorf("%w: %s", dispatch.ErrUnknownTable, table)
	}
	endpoint := restPrefix + table
	if len(filters) > 0 {
		endpoint += "?" + filters.Encode()
	}
	return endpoint, nil
}

func ownedBy(userID, id string) url.Values {
	q := url.Values{}
	q.Set("user_id", "eq."+userID)
	if id != "" {
		q.Set("id", "eq."+id)
	}
	return q
}

// Select returns every row of table owned by userID
func (s *RESTStore) Select(ctx context.Context, table, userID string) ([]models.Record, error) {
	q := ownedBy(userID, "")
	q.Set("select", "*")
	q.Set("order", restOrder[table])
	endpoint, err := tableEndpoint(table, q)
	if err != nil {
		return nil, err
	}

	var rows []models.Record
	if err := s.client.GetJSON(ctx, endpoint, &rows); err != nil {
		return nil, fmt.Errorf("failed to select %s: %w", table, err)
	}
	if rows == nil {
		rows = []models.Record{}
	}
	return rows, nil
}

// Insert stores row for userID and returns the stored representation
func (s *RESTStore) Insert(ctx context.Context, table, userID string, row models.Record) (models.Record, error) {
	endpoint, err := tableEndpoint(table, nil)
	if err != nil {
		return nil, err
	}

	body := make(models.Record, len(row)+1)
	for k, v := range row {
		body[k] = v
	}
	body["user_id"] = userID

	var rows []models.Record
	if err := s.client.Do(ctx, table, nethttp.MethodPost, endpoint, body, representation(), &rows); err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert into %s returned no row", table)
	}
	return rows[0], nil
}

// Update applies changes to the row id owned by userID
func (s *RESTStore) Update(ctx context.Context, table, userID, id string, changes models.Record) (models.Record, error) {
	if len(changes) == 0 {
		return nil, fmt.Errorf("%w: no changes", dispatch.ErrValidation)
	}
	endpoint, err := tableEndpoint(table, ownedBy(userID, id))
	if err != nil {
		return nil, err
	}

	var rows []models.Record
	if err := s.client.Do(ctx, table, nethttp.MethodPatch, endpoint, changes, representation(), &rows); err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", table, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s %s: %w", table, id, dispatch.ErrNotFound)
	}
	return rows[0], nil
}

// Delete removes the row id owned by userID
func (s *RESTStore) Delete(ctx context.Context, table, userID, id string) error {
	endpoint, err := tableEndpoint(table, ownedBy(userID, id))
	if err != nil {
		return err
	}

	var rows []models.Record
	if err := s.client.Do(ctx, table, nethttp.MethodDelete, endpoint, nil, representation(), &rows); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s %s: %w", table, id, dispatch.ErrNotFound)
	}
	return nil
}

// Call invokes a remote procedure with named arguments
func (s *RESTStore) Call(ctx context.Context, procedure string, args models.Record) error {
	if procedure == "" {
		return fmt.Errorf("%w: empty name", dispatch.ErrUnknownProc)
	}
	body := make(map[string]interface{}, len(args))
	for k, v := range args {
		body["p_"+k] = v
	}
	if err := s.client.Do(ctx, "rpc", nethttp.MethodPost, rpcPrefix+url.PathEscape(procedure), body, nil, nil); err != nil {
		return fmt.Errorf("failed to call %s: %w", procedure, err)
	}
	return nil
}

func representation() map[string]string {
	return map[string]string{preferHeader: returnRepresentation}
}
