package integration

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/dead-or-play/gate-go/config"
	"github.com/dead-or-play/gate-go/response"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createTicket(t *testing.T) response.CreateTicketResponse {
	resp := doRequest(t, "POST", "/gate/create", "", nil, http.StatusOK)

	var result response.CreateTicketResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.NotEmpty(t, result.TicketID)
	return result
}

func verifyTicket(t *testing.T, nonce string) response.CallbackResponse {
	resp := doRequest(t, "GET", "/gate/callback?click_id="+nonce, "", nil, http.StatusOK)

	var result response.CallbackResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.Equal(t, response.StatusSuccess, result.Status)
	return result
}

func TestGateEndToEnd(t *testing.T) {
	created := createTicket(t)
	require.False(t, created.IsExisting)
	require.NotNil(t, created.LootlabsURL)
	require.Contains(t, *created.LootlabsURL, "click_id="+created.TicketID)

	verified := verifyTicket(t, created.TicketID)
	require.False(t, verified.HasPassword)
	require.Nil(t, verified.InstagramID)
	require.GreaterOrEqual(t, len(verified.PlayerNum), 4)

	// Re-validation is idempotent: same outcome, same number.
	again := verifyTicket(t, created.TicketID)
	require.Equal(t, verified.PlayerNum, again.PlayerNum)

	registerBody := map[string]string{
		"click_id":     created.TicketID,
		"password":     "p1",
		"instagram_id": "h-e2e",
	}
	resp := doRequest(t, "POST", "/gate/register", "", registerBody, http.StatusOK)
	var status response.GateStatusResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &status))
	require.Equal(t, response.StatusSuccess, status.Status)

	// One-time binding: a second attempt is a soft failure.
	registerBody["password"] = "p2"
	resp = doRequest(t, "POST", "/gate/register", "", registerBody, http.StatusOK)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &status))
	require.Equal(t, response.StatusFail, status.Status)

	verified = verifyTicket(t, created.TicketID)
	require.True(t, verified.HasPassword)
	require.NotNil(t, verified.InstagramID)
	require.Equal(t, "h-e2e", *verified.InstagramID)

	loginBody := map[string]string{"instagram_id": "h-e2e", "password": "p1"}
	resp = doRequest(t, "POST", "/gate/login", "", loginBody, http.StatusOK)
	var login response.LoginResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &login))
	require.Equal(t, response.StatusSuccess, login.Status)
	require.Equal(t, created.TicketID, login.TicketID)

	// Numeric login still works for the same ticket. The original
	// password must have survived the rejected re-registration.
	loginBody = map[string]string{"player_num": verified.PlayerNum, "password": "p1"}
	resp = doRequest(t, "POST", "/gate/login", "", loginBody, http.StatusOK)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &login))
	require.Equal(t, response.StatusSuccess, login.Status)
	require.Equal(t, created.TicketID, login.TicketID)

	loginBody["password"] = "wrong"
	resp = doRequest(t, "POST", "/gate/login", "", loginBody, http.StatusOK)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &login))
	require.Equal(t, response.StatusFail, login.Status)
	require.Empty(t, login.TicketID)
}

func TestPlayerNumbersIncrease(t *testing.T) {
	first := verifyTicket(t, createTicket(t).TicketID)
	second := verifyTicket(t, createTicket(t).TicketID)

	n1, err := strconv.Atoi(first.PlayerNum)
	require.NoError(t, err)
	n2, err := strconv.Atoi(second.PlayerNum)
	require.NoError(t, err)
	require.Greater(t, n2, n1)
}

func TestCallbackRejectsBadClickID(t *testing.T) {
	doRequest(t, "GET", "/gate/callback", "", nil, http.StatusBadRequest)
	doRequest(t, "GET", "/gate/callback?click_id=", "", nil, http.StatusBadRequest)
	doRequest(t, "GET", "/gate/callback?click_id=undefined", "", nil, http.StatusBadRequest)
	doRequest(t, "GET", "/gate/callback?click_id=%7Bclick_id%7D", "", nil, http.StatusBadRequest)
}

func TestCallbackUnknownNonce(t *testing.T) {
	doRequest(t, "GET", "/gate/callback?click_id="+uuid.NewString(), "", nil, http.StatusBadRequest)
}

func TestRegisterUnknownTicket(t *testing.T) {
	body := map[string]string{
		"click_id":     uuid.NewString(),
		"password":     "p1",
		"instagram_id": "h-ghost",
	}
	doRequest(t, "POST", "/gate/register", "", body, http.StatusBadRequest)
}

func TestRegisterHandleConflict(t *testing.T) {
	first := createTicket(t)
	second := createTicket(t)

	body := map[string]string{
		"click_id":     first.TicketID,
		"password":     "p1",
		"instagram_id": "h-conflict",
	}
	resp := doRequest(t, "POST", "/gate/register", "", body, http.StatusOK)
	var status response.GateStatusResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &status))
	require.Equal(t, response.StatusSuccess, status.Status)

	body["click_id"] = second.TicketID
	resp = doRequest(t, "POST", "/gate/register", "", body, http.StatusOK)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &status))
	require.Equal(t, response.StatusFail, status.Status)
}

func TestLoginMalformedPlayerNum(t *testing.T) {
	body := map[string]string{"player_num": "seven", "password": "p1"}
	resp := doRequest(t, "POST", "/gate/login", "", body, http.StatusOK)

	var login response.LoginResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &login))
	require.Equal(t, response.StatusFail, login.Status)
}

func TestCreateTicketIPDedup(t *testing.T) {
	config.GateIPDedup = true
	defer func() { config.GateIPDedup = false }()

	ip := "198.51.100.7"
	resp := doRequestFrom(t, "POST", "/gate/create", ip, "", nil, http.StatusOK)
	var first response.CreateTicketResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &first))
	require.False(t, first.IsExisting)
	require.NotNil(t, first.LootlabsURL)

	resp = doRequestFrom(t, "POST", "/gate/create", ip, "", nil, http.StatusOK)
	var second response.CreateTicketResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &second))
	require.True(t, second.IsExisting)
	require.Equal(t, first.TicketID, second.TicketID)
	require.Nil(t, second.LootlabsURL)
}
