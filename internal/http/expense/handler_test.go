package expense_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvargas/spendtrack/internal/analytics"
	"github.com/mvargas/spendtrack/internal/expense"
	"github.com/mvargas/spendtrack/internal/expense/store"
	expenseHandler "github.com/mvargas/spendtrack/internal/http/expense"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	expenseSvc := expense.NewService(store.New())
	analyticsSvc := analytics.NewService(expenseSvc)

	router := chi.NewRouter()
	router.Route("/expenses", expenseHandler.NewHandler(expenseSvc, analyticsSvc, 50).Routes)

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	return ts
}

func postExpense(t *testing.T, ts *httptest.Server, body string) map[string]any {
	t.Helper()

	resp, err := http.Post(ts.URL+"/expenses", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	return decoded
}

func TestHandler_CreateAndGet(t *testing.T) {
	ts := newServer(t)

	created := postExpense(t, ts, `{
		"description": "Groceries",
		"amount": "42.17",
		"category": "Food",
		"date": "2026-03-14T18:30:00.123456789Z"
	}`)

	id := int64(created["id"].(float64))
	require.Positive(t, id)

	resp, err := http.Get(fmt.Sprintf("%s/expenses/%d", ts.URL, id))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Equal(t, "Groceries", got["description"])
	assert.Equal(t, "42.17", got["amount"], "amount must survive as an exact decimal string")
	assert.Equal(t, "Food", got["category"])
	assert.Equal(t, "2026-03-14T18:30:00.123456789Z", got["date"], "sub-second precision must round-trip")
}

func TestHandler_GetNotFound(t *testing.T) {
	ts := newServer(t)

	resp, err := http.Get(ts.URL + "/expenses/12345")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_UpdateAndDelete(t *testing.T) {
	ts := newServer(t)
	client := ts.Client()

	created := postExpense(t, ts, `{
		"description": "Old",
		"amount": "10.00",
		"category": "Misc",
		"date": "2026-01-01T00:00:00Z"
	}`)
	id := int64(created["id"].(float64))

	url := fmt.Sprintf("%s/expenses/%d", ts.URL, id)

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewBufferString(`{
		"description": "New",
		"amount": "12.34",
		"category": "Food",
		"date": "2026-01-02T00:00:00Z"
	}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "New", updated["description"])
	assert.Equal(t, created["created_at"], updated["created_at"])

	del, err := http.NewRequest(http.MethodDelete, url, nil)
	require.NoError(t, err)

	delResp, err := client.Do(del)
	require.NoError(t, err)
	delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)

	getResp, err := http.Get(url)
	require.NoError(t, err)
	getResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
}

func TestHandler_SortedDefaultsToDate(t *testing.T) {
	ts := newServer(t)

	postExpense(t, ts, `{"description":"second","amount":"1.00","category":"A","date":"2026-02-01T00:00:00Z"}`)
	postExpense(t, ts, `{"description":"first","amount":"2.00","category":"B","date":"2026-01-01T00:00:00Z"}`)

	resp, err := http.Get(ts.URL + "/expenses/sorted?sort_by=bogus")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 2)

	assert.Equal(t, "first", got[0]["description"])
	assert.Equal(t, "second", got[1]["description"])
}

func TestHandler_RecentReturnsEmptyArray(t *testing.T) {
	ts := newServer(t)

	resp, err := http.Get(ts.URL + "/expenses/recent?limit=0")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Empty(t, got)
}
