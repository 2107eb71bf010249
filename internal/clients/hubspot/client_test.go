package hubspot_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incorpora/onboarding-api/internal/clients/hubspot"
	"github.com/incorpora/onboarding-api/internal/domain/onboarding"
	apperr "github.com/incorpora/onboarding-api/internal/errors"
)

func newTestClient(t *testing.T, handler http.Handler) hubspot.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := hubspot.New(&hubspot.Config{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		Token:      "test-token",
	})
	require.NoError(t, err)
	return client
}

func TestNew_RequiresToken(t *testing.T) {
	_, err := hubspot.New(&hubspot.Config{})
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidArgument))
}

func TestCreateContact(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]map[string]string

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"crm-contact-77"}`))
	}))

	id, err := client.CreateContact(context.Background(), &hubspot.ContactProperties{
		Email:     "jane@x.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "+12025551234",
	})
	require.NoError(t, err)
	assert.Equal(t, "crm-contact-77", id)
	assert.Equal(t, "/crm/v3/objects/contacts", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "jane@x.com", gotBody["properties"]["email"])
	assert.Equal(t, "Jane", gotBody["properties"]["firstname"])
}

func TestCreateCompany(t *testing.T) {
	var gotPath string
	var gotBody map[string]map[string]string

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"id":"crm-company-9"}`))
	}))

	props := hubspot.CompanyPropertiesFrom(onboarding.EntityTypeLLC, onboarding.MembershipTypeSingle, "WY")
	id, err := client.CreateCompany(context.Background(), props)
	require.NoError(t, err)
	assert.Equal(t, "crm-company-9", id)
	assert.Equal(t, "/crm/v3/objects/companies", gotPath)
	assert.Equal(t, "LLC", gotBody["properties"]["tipo_de_compania_en_usa_test"])
	assert.Equal(t, "Single Member", gotBody["properties"]["tipo_de_sociedad_de_la_compania_americana"])
	assert.Equal(t, "Wyoming", gotBody["properties"]["estado_de_la_compania_americana"])
}

func TestAssociateContactCompany(t *testing.T) {
	var gotMethod, gotPath string

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	err := client.AssociateContactCompany(context.Background(), "c-1", "co-2")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/crm/v3/objects/contacts/c-1/associations/companies/co-2/contact_to_company", gotPath)
}

func TestAssociateContactCompany_RequiresBothIDs(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	err := client.AssociateContactCompany(context.Background(), "", "co-2")
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidArgument))
}

func TestCreateContact_APIErrorIsIntegration(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Contact already exists"}`))
	}))

	_, err := client.CreateContact(context.Background(), &hubspot.ContactProperties{Email: "jane@x.com"})
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeIntegration))
	assert.Contains(t, err.Error(), "Contact already exists")
}

func TestCompanyPropertiesFrom_UnknownValuesMapToBlank(t *testing.T) {
	props := hubspot.CompanyPropertiesFrom(onboarding.EntityTypeCCorp, "", "ZZ")
	assert.Equal(t, "C_CORP", props.EntityType)
	assert.Empty(t, props.MembershipType)
	assert.Empty(t, props.State)
}
