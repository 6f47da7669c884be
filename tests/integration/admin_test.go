package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dead-or-play/gate-go/config"
	"github.com/dead-or-play/gate-go/models"
	"github.com/dead-or-play/gate-go/response"
	"github.com/stretchr/testify/require"
)

func adminLogin(t *testing.T, password string, expectedStatus int) string {
	resp := doRequest(t, "POST", "/admin/login", "", map[string]string{"password": password}, expectedStatus)
	if expectedStatus != http.StatusOK {
		return ""
	}

	var result response.TokenResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}

func TestAdminTickets(t *testing.T) {
	config.AdminPassword = "letmein"

	adminLogin(t, "guess", http.StatusUnauthorized)
	token := adminLogin(t, "letmein", http.StatusOK)

	created := createTicket(t)

	doRequest(t, "GET", "/admin/tickets", "", nil, http.StatusUnauthorized)
	doRequest(t, "GET", "/admin/tickets", "bogus-token", nil, http.StatusUnauthorized)

	resp := doRequest(t, "GET", "/admin/tickets", token, nil, http.StatusOK)
	var tickets []models.Ticket
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tickets))

	nonces := []string{}
	for _, ticket := range tickets {
		nonces = append(nonces, ticket.Nonce)
	}
	require.Contains(t, nonces, created.TicketID)
}
