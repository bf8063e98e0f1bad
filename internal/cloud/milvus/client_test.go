package milvus_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/graelo/milvus-project-helper/internal/cloud/milvus"
	"github.com/graelo/milvus-project-helper/internal/utils/test/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("should reject a malformed uri", func(t *testing.T) {
		_, err := milvus.NewClient("grpc://localhost:19530")
		assert.NotNil(t, err)
	})

	t.Run("should accept a uri without credentials", func(t *testing.T) {
		client, err := milvus.NewClient("http://localhost:19530")
		assert.Nil(t, err)
		assert.Equal(t, milvus.DefaultDatabase, client.ActiveDatabase())
	})
}

func TestClientDatabases(t *testing.T) {
	t.Run("should list databases and report existence", func(t *testing.T) {
		server := newTestServer(t, map[string]testResponse{
			"/v2/vectordb/databases/list": {data: `["default","db_acme"]`},
		})
		defer server.Close()

		client := newTestClient(t, server.URL)

		databases, err := client.Databases()
		assert.Nil(t, err)
		assert.Equal(t, []string{"default", "db_acme"}, databases)

		exists, err := client.DatabaseExists("db_acme")
		assert.Nil(t, err)
		assert.True(t, exists, "expected db_acme to exist")

		exists, err = client.DatabaseExists("db_other")
		assert.Nil(t, err)
		assert.False(t, exists, "expected db_other to not exist")
	})

	t.Run("should send the bearer token derived from the uri credentials", func(t *testing.T) {
		var authHeader string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader = r.Header.Get("Authorization")
			fmt.Fprint(w, `{"code":0,"data":[]}`)
		}))
		defer server.Close()

		client, err := milvus.NewClient(serverURLWithCreds(server.URL, "root", "Milvus"))
		assert.Nil(t, err)

		_, err = client.Databases()
		assert.Nil(t, err)
		assert.Equal(t, "Bearer root:Milvus", authHeader)
	})

	t.Run("should surface a server error from the response envelope", func(t *testing.T) {
		server := newTestServer(t, map[string]testResponse{
			"/v2/vectordb/databases/create": {code: 1100, message: "database already exist: db_acme"},
		})
		defer server.Close()

		client := newTestClient(t, server.URL)

		err := client.CreateDatabase("db_acme")
		assert.Equal(t, milvus.ServerError{Code: 1100, Message: "database already exist: db_acme"}, err)
	})
}

func TestClientActiveDatabase(t *testing.T) {
	t.Run("should reject a blank database name", func(t *testing.T) {
		client := newTestClient(t, "http://localhost:19530")
		assert.NotNil(t, client.UseDatabase(""))
	})

	t.Run("should scope user and role requests to the active database", func(t *testing.T) {
		payloads := map[string]map[string]interface{}{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var payload map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&payload); err == nil {
				payloads[r.URL.Path] = payload
			}
			fmt.Fprint(w, `{"code":0,"data":[]}`)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		assert.Nil(t, client.UseDatabase("db_acme"))
		assert.Equal(t, "db_acme", client.ActiveDatabase())

		_, err := client.Users()
		assert.Nil(t, err)
		assert.Nil(t, client.CreateRole("role_acme"))
		assert.Nil(t, client.GrantRole("user_acme", "role_acme"))

		assert.Equal(t, "db_acme", payloads["/v2/vectordb/users/list"]["dbName"])
		assert.Equal(t, "role_acme", payloads["/v2/vectordb/roles/create"]["roleName"])
		assert.Equal(t, "db_acme", payloads["/v2/vectordb/roles/create"]["dbName"])
		assert.Equal(t, "user_acme", payloads["/v2/vectordb/users/grant_role"]["userName"])
	})
}

func TestClientRoles(t *testing.T) {
	t.Run("should describe a role's privileges", func(t *testing.T) {
		server := newTestServer(t, map[string]testResponse{
			"/v2/vectordb/roles/describe": {data: `[
				{"privilege":"Search","objectType":"Collection","objectName":"*"},
				{"privilege":"Query","objectType":"Collection","objectName":"*"}
			]`},
		})
		defer server.Close()

		client := newTestClient(t, server.URL)

		privileges, err := client.DescribeRole("role_acme")
		assert.Nil(t, err)
		assert.Equal(t, []milvus.Privilege{
			{Privilege: "Search", ObjectType: "Collection", ObjectName: "*"},
			{Privilege: "Query", ObjectType: "Collection", ObjectName: "*"},
		}, privileges)
	})

	t.Run("should pass grant and revoke payloads through", func(t *testing.T) {
		payloads := map[string]map[string]interface{}{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var payload map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&payload); err == nil {
				payloads[r.URL.Path] = payload
			}
			fmt.Fprint(w, `{"code":0}`)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		privilege := milvus.Privilege{Privilege: "Insert", ObjectType: "Collection", ObjectName: "*"}
		assert.Nil(t, client.GrantPrivilege("role_acme", privilege))
		assert.Nil(t, client.RevokePrivilege("role_acme", privilege))

		for _, path := range []string{"/v2/vectordb/roles/grant_privilege", "/v2/vectordb/roles/revoke_privilege"} {
			assert.Equal(t, "role_acme", payloads[path]["roleName"])
			assert.Equal(t, "Insert", payloads[path]["privilege"])
			assert.Equal(t, "Collection", payloads[path]["objectType"])
			assert.Equal(t, "*", payloads[path]["objectName"])
		}
	})
}

func TestClientHTTPFailure(t *testing.T) {
	t.Run("should surface a non-200 response body as an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, "proxy not ready")
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.Users()
		assert.NotNil(t, err)
		assert.Equal(t, "proxy not ready", err.Error())
	})
}

type testResponse struct {
	code    int
	message string
	data    string
}

func newTestServer(t *testing.T, responses map[string]testResponse) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res, ok := responses[r.URL.Path]
		if !ok {
			fmt.Fprint(w, `{"code":0}`)
			return
		}
		if res.code != 0 {
			fmt.Fprintf(w, `{"code":%d,"message":%q}`, res.code, res.message)
			return
		}
		fmt.Fprintf(w, `{"code":0,"data":%s}`, res.data)
	}))
}

func newTestClient(t *testing.T, serverURL string) milvus.Client {
	t.Helper()
	client, err := milvus.NewClient(serverURL)
	assert.Nil(t, err)
	return client
}

func serverURLWithCreds(serverURL, username, password string) string {
	return "http://" + username + ":" + password + "@" + serverURL[len("http://"):]
}
