package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importTestPage = `<!DOCTYPE html>
<html>
<head>
  <title>Taverna Dionysos</title>
  <meta name="description" content="Traditional Greek taverna in the heart of Athens.">
</head>
<body>
  <a href="mailto:info@dionysos.gr">Email us</a>
  <a href="mailto:info@dionysos.gr?subject=hi">Email again</a>
  <a href="tel:+302101234567">Call us</a>
  <a href="/menu">Menu</a>
</body>
</html>`

func TestImportFromWebsite(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(importTestPage))
	}))
	defer server.Close()

	service := NewImportService()
	draft, err := service.ImportFromWebsite(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Taverna Dionysos", draft.Name)
	assert.Equal(t, "Traditional Greek taverna in the heart of Athens.", draft.Description)
	assert.Equal(t, server.URL, draft.Website)
	assert.Equal(t, []string{"info@dionysos.gr"}, draft.Emails, "mailto dedup and query strip")
	assert.Equal(t, []string{"+302101234567"}, draft.Phones)
}

func TestImportFromWebsiteRejectsBadURL(t *testing.T) {
	service := NewImportService()

	_, err := service.ImportFromWebsite(context.Background(), "ftp://example.com")
	assert.Error(t, err)

	_, err = service.ImportFromWebsite(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestImportFromWebsiteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := NewImportService()
	_, err := service.ImportFromWebsite(context.Background(), server.URL)
	assert.Error(t, err)
}
